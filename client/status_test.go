package client_test

import (
	"context"
	"io"
	"testing"

	"github.com/drpcorg/chainquery/client"
	"github.com/drpcorg/chainquery/provider"
	"github.com/drpcorg/chainquery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientGetStatus(t *testing.T) {
	backend := new(backendMock)
	queryClient := client.NewClient[provider.Provider](backend)

	backend.On("GetStatusByFormat", mock.Anything, types.FormatJsonStream).
		Return(&fakeStream{chunks: [][]byte{
			[]byte("{\"chain\":\"ETH\",\"latest_block_height\":100}\n"),
		}}, nil)

	stream, err := queryClient.GetStatus(context.Background())
	require.NoError(t, err)

	status, err := stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &types.Status{Chain: "ETH", LatestBlockHeight: 100}, status)

	_, err = stream.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	backend.AssertExpectations(t)
}

func TestStatusStreamRecordsSpanChunks(t *testing.T) {
	backend := new(backendMock)
	queryClient := client.NewClient[provider.Provider](backend)

	backend.On("GetStatusByFormat", mock.Anything, types.FormatJsonStream).
		Return(&fakeStream{chunks: [][]byte{
			[]byte("{\"chain\":\"ETH\",\"latest_bl"),
			[]byte("ock_height\":100}\n{\"chain\":\"BTC\",\"latest_block_height\":50}\n{\"chain\":"),
			[]byte("\"FUEL\",\"latest_block_height\":7}"),
		}}, nil)

	stream, err := queryClient.GetStatus(context.Background())
	require.NoError(t, err)

	var got []string
	for {
		status, err := stream.Next(context.Background())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, status.Chain)
	}

	assert.Equal(t, []string{"ETH", "BTC", "FUEL"}, got)
}

func TestStatusStreamBadRecordDoesNotAbort(t *testing.T) {
	backend := new(backendMock)
	queryClient := client.NewClient[provider.Provider](backend)

	backend.On("GetStatusByFormat", mock.Anything, types.FormatJsonStream).
		Return(&fakeStream{chunks: [][]byte{
			[]byte("{\"chain\":\"ETH\",\"latest_block_height\":100}\nnot a record\n{\"chain\":\"BTC\",\"latest_block_height\":50}\n"),
		}}, nil)

	stream, err := queryClient.GetStatus(context.Background())
	require.NoError(t, err)

	status, err := stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ETH", status.Chain)

	_, err = stream.Next(context.Background())
	require.Error(t, err)
	assert.True(t, provider.IsDecodeError(err))

	status, err = stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BTC", status.Chain)

	_, err = stream.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestStatusStreamSkipsBlankLines(t *testing.T) {
	backend := new(backendMock)
	queryClient := client.NewClient[provider.Provider](backend)

	backend.On("GetStatusByFormat", mock.Anything, types.FormatJsonStream).
		Return(&fakeStream{chunks: [][]byte{
			[]byte("\n\n{\"chain\":\"ETH\",\"latest_block_height\":100}\n\n"),
		}}, nil)

	stream, err := queryClient.GetStatus(context.Background())
	require.NoError(t, err)

	status, err := stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ETH", status.Chain)

	_, err = stream.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestStatusStreamCloseReleasesUnderlying(t *testing.T) {
	backend := new(backendMock)
	queryClient := client.NewClient[provider.Provider](backend)

	underlying := &fakeStream{}
	backend.On("GetStatusByFormat", mock.Anything, types.FormatJsonStream).
		Return(underlying, nil)

	stream, err := queryClient.GetStatus(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	assert.True(t, underlying.closed)
}
