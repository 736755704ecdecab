package client_test

import (
	"context"
	"io"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/client"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/provider"
	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	chunks [][]byte
	closed bool
}

func (f *fakeStream) Next(_ context.Context) ([]byte, error) {
	if len(f.chunks) == 0 {
		return nil, io.EOF
	}
	chunk := f.chunks[0]
	f.chunks = f.chunks[1:]
	return chunk, nil
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

// backendMock overrides only the methods a test expects; the embedded
// interfaces satisfy the rest of the capability method sets.
type backendMock struct {
	mock.Mock
	provider.Provider
	provider.ChainProvider
	provider.FuelProvider
	provider.MoveProvider
}

func (m *backendMock) GetStatusByFormat(ctx context.Context, format types.Format) (provider.StreamResponse, error) {
	args := m.Called(ctx, format)
	return args.Get(0).(provider.StreamResponse), args.Error(1)
}

func (m *backendMock) GetLogsByFormat(ctx context.Context, request *requests.GetLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	args := m.Called(ctx, request, format, deltas)
	return args.Get(0).(provider.StreamResponse), args.Error(1)
}

func (m *backendMock) GetFuelLogsByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	args := m.Called(ctx, request, format, deltas)
	return args.Get(0).(provider.StreamResponse), args.Error(1)
}

func (m *backendMock) GetMoveTxsByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	args := m.Called(ctx, request, format, deltas)
	return args.Get(0).(provider.StreamResponse), args.Error(1)
}

func TestClientFuelChainValidation(t *testing.T) {
	tests := []struct {
		name      string
		chains    mapset.Set[chains.ChainId]
		delegated bool
	}{
		{
			name:      "nil set means default chains",
			chains:    nil,
			delegated: true,
		},
		{
			name:      "fuel family chains pass",
			chains:    mapset.NewSet(chains.FUEL, chains.FUELTESTNET),
			delegated: true,
		},
		{
			name:      "foreign chain is rejected",
			chains:    mapset.NewSet(chains.FUEL, chains.ETH),
			delegated: false,
		},
		{
			name:      "empty set is rejected",
			chains:    mapset.NewSet[chains.ChainId](),
			delegated: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(te *testing.T) {
			backend := new(backendMock)
			queryClient := client.NewClient[provider.Provider](backend)
			request := &requests.GetFuelLogsRequest{Chains: test.chains}

			if test.delegated {
				backend.On("GetFuelLogsByFormat", mock.Anything, request, types.FormatArrow, false).
					Return(&fakeStream{}, nil)
			}

			stream, err := queryClient.GetFuelLogsByFormat(context.Background(), request, types.FormatArrow, false)

			if test.delegated {
				require.NoError(te, err)
				assert.NotNil(te, stream)
				backend.AssertExpectations(te)
			} else {
				require.Error(te, err)
				assert.True(te, provider.IsValidationError(err))
				backend.AssertNotCalled(te, "GetFuelLogsByFormat", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestClientMoveChainValidation(t *testing.T) {
	tests := []struct {
		name      string
		chains    mapset.Set[chains.ChainId]
		delegated bool
	}{
		{
			name:      "nil set means default chains",
			chains:    nil,
			delegated: true,
		},
		{
			name:      "move family chains pass",
			chains:    mapset.NewSet(chains.MOVEMENT),
			delegated: true,
		},
		{
			name:      "foreign chain is rejected",
			chains:    mapset.NewSet(chains.FUEL),
			delegated: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(te *testing.T) {
			backend := new(backendMock)
			queryClient := client.NewClient[provider.Provider](backend)
			request := &requests.GetMoveTxsRequest{Chains: test.chains}

			if test.delegated {
				backend.On("GetMoveTxsByFormat", mock.Anything, request, types.FormatJsonStream, true).
					Return(&fakeStream{}, nil)
			}

			stream, err := queryClient.GetMoveTxsByFormat(context.Background(), request, types.FormatJsonStream, true)

			if test.delegated {
				require.NoError(te, err)
				assert.NotNil(te, stream)
				backend.AssertExpectations(te)
			} else {
				require.Error(te, err)
				assert.True(te, provider.IsValidationError(err))
				backend.AssertNotCalled(te, "GetMoveTxsByFormat", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestClientEvmChainsNotValidated(t *testing.T) {
	backend := new(backendMock)
	queryClient := client.NewClient[provider.Provider](backend)
	request := &requests.GetLogsRequest{Chains: mapset.NewSet(chains.ARBITRUM, chains.BASE)}

	backend.On("GetLogsByFormat", mock.Anything, request, types.FormatArrow, false).
		Return(&fakeStream{}, nil)

	_, err := queryClient.GetLogsByFormat(context.Background(), request, types.FormatArrow, false)

	require.NoError(t, err)
	backend.AssertExpectations(t)
}

type statusOnlyBackend struct {
	provider.Provider
}

func TestClientUnsupportedCapability(t *testing.T) {
	queryClient := client.NewClient[provider.Provider](&statusOnlyBackend{})

	_, err := queryClient.GetFuelLogsByFormat(context.Background(), &requests.GetFuelLogsRequest{}, types.FormatArrow, false)

	require.Error(t, err)
	var queryError *provider.QueryError
	require.ErrorAs(t, err, &queryError)
	assert.Equal(t, provider.ClientErrorCode, queryError.Code)
}
