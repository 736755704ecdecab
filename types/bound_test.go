package types_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/drpcorg/chainquery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundMarshal(t *testing.T) {
	tests := []struct {
		name     string
		bound    types.Bound
		expected string
	}{
		{
			name:     "unbounded",
			bound:    types.NoBound(),
			expected: "null",
		},
		{
			name:     "exact height",
			bound:    types.Exact(100),
			expected: "100",
		},
		{
			name:     "offset from tip",
			bound:    types.FromLatest(10),
			expected: "-10",
		},
		{
			name:     "latest",
			bound:    types.Latest(),
			expected: `"latest"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(te *testing.T) {
			body, err := sonic.Marshal(test.bound)

			require.NoError(te, err)
			assert.Equal(te, test.expected, string(body))
		})
	}
}

func TestBoundRoundTrip(t *testing.T) {
	bounds := []types.Bound{
		types.NoBound(),
		types.Exact(0),
		types.Exact(21000000),
		types.FromLatest(10),
		types.Latest(),
	}

	for _, bound := range bounds {
		body, err := sonic.Marshal(bound)
		require.NoError(t, err)

		var parsed types.Bound
		err = sonic.Unmarshal(body, &parsed)

		require.NoError(t, err)
		assert.Equal(t, bound, parsed)
	}
}

func TestBoundZeroValueIsAbsent(t *testing.T) {
	var bound types.Bound

	_, present := bound.Param()

	assert.True(t, bound.IsNone())
	assert.False(t, present)
	assert.Equal(t, "", bound.String())
}

func TestBoundParam(t *testing.T) {
	param, present := types.Exact(200).Param()
	assert.True(t, present)
	assert.Equal(t, uint64(200), param)

	param, present = types.FromLatest(5).Param()
	assert.True(t, present)
	assert.Equal(t, int64(-5), param)

	param, present = types.Latest().Param()
	assert.True(t, present)
	assert.Equal(t, "latest", param)
}

func TestBoundUnmarshalInvalid(t *testing.T) {
	var bound types.Bound

	err := bound.UnmarshalJSON([]byte(`"oldest"`))

	assert.Error(t, err)
}
