package requests_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
	"github.com/stretchr/testify/assert"
)

func TestFilterJoinIsDeterministic(t *testing.T) {
	first := requests.JoinFilter(mapset.NewSet("0xccc", "0xaaa", "0xbbb"))
	second := requests.JoinFilter(mapset.NewSet("0xbbb", "0xccc", "0xaaa"))

	assert.Equal(t, "0xaaa,0xbbb,0xccc", first)
	assert.Equal(t, first, second)
}

func TestFilterRoundTrip(t *testing.T) {
	original := mapset.NewSet("0xccc", "0xaaa", "0xbbb", "0xaaa")

	parsed := requests.SplitFilter(requests.JoinFilter(original))

	assert.True(t, original.Equal(parsed))
}

func TestChainsRoundTrip(t *testing.T) {
	original := mapset.NewSet(chains.ETH, chains.BASE, chains.ARBITRUM)

	parsed := requests.ParseChains(requests.JoinFilter(original))

	assert.True(t, original.Equal(parsed))
}

func TestEmptyFilterIsOmitted(t *testing.T) {
	request := requests.GetLogsRequest{
		Chains:    mapset.NewSet(chains.ETH),
		AddressIn: mapset.NewSet[string](),
	}

	params := request.Params()

	assert.NotContains(t, params, "address__in")
	assert.NotContains(t, params, "topic0__in")
	assert.NotContains(t, params, "from_block")
	assert.NotContains(t, params, "to_block")
}

func TestDefaultChainsArePopulated(t *testing.T) {
	tests := []struct {
		name     string
		request  requests.Request
		expected string
	}{
		{
			name:     "evm blocks default to ETH",
			request:  &requests.GetBlocksRequest{},
			expected: "ETH",
		},
		{
			name:     "fuel blocks default to FUEL",
			request:  &requests.GetFuelBlocksRequest{},
			expected: "FUEL",
		},
		{
			name:     "move logs default to MOVEMENT",
			request:  &requests.GetMoveLogsRequest{},
			expected: "MOVEMENT",
		},
		{
			name:     "btc blocks default to BTC",
			request:  &requests.GetBtcBlocksRequest{},
			expected: "BTC",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(te *testing.T) {
			params := test.request.Params()

			assert.Equal(te, test.expected, params["chains"])
		})
	}
}

func TestExplicitChainsAreKept(t *testing.T) {
	request := requests.GetBlocksRequest{
		Chains: mapset.NewSet(chains.BASE, chains.ARBITRUM),
	}

	params := request.Params()

	assert.Equal(t, "ARBITRUM,BASE", params["chains"])
}

func TestBoundsAreRendered(t *testing.T) {
	request := requests.GetBlocksRequest{
		Chains:    mapset.NewSet(chains.ETH),
		FromBlock: types.Exact(100),
		ToBlock:   types.Latest(),
	}

	params := request.Params()

	assert.Equal(t, uint64(100), params["from_block"])
	assert.Equal(t, "latest", params["to_block"])
}

func TestParamsValues(t *testing.T) {
	request := requests.GetLogsRequest{
		Chains:    mapset.NewSet(chains.ETH),
		FromBlock: types.Exact(100),
		ToBlock:   types.Exact(200),
		AddressIn: mapset.NewSet("0xbbb", "0xaaa"),
	}

	values := request.Params().Values()

	assert.Equal(t, "ETH", values.Get("chains"))
	assert.Equal(t, "100", values.Get("from_block"))
	assert.Equal(t, "200", values.Get("to_block"))
	assert.Equal(t, "0xaaa,0xbbb", values.Get("address__in"))
}

func TestNegativeOffsetBound(t *testing.T) {
	request := requests.GetBlocksRequest{
		Chains:    mapset.NewSet(chains.ETH),
		FromBlock: types.FromLatest(10),
	}

	values := request.Params().Values()

	assert.Equal(t, "-10", values.Get("from_block"))
}
