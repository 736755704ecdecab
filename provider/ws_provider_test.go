package provider_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/drpcorg/chainquery/provider"
	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type wsTestFrame struct {
	Id        uint64          `json:"id"`
	Operation string          `json:"operation"`
	Params    requests.Params `json:"params,omitempty"`
	Format    string          `json:"format,omitempty"`
	Deltas    bool            `json:"deltas,omitempty"`
}

var wsTestUpgrader = websocket.Upgrader{}

// newWsTestServer runs a backend stub calling handle once per inbound frame.
func newWsTestServer(t *testing.T, handle func(conn *websocket.Conn, frame wsTestFrame)) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := wsTestUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() {
			_ = conn.Close()
		}()
		for {
			var frame wsTestFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			handle(conn, frame)
		}
	}))
	t.Cleanup(server.Close)
	return strings.TrimPrefix(server.URL, "http://")
}

func newTestWsProvider(t *testing.T, endpoint string) *provider.WsProvider {
	wsProvider, err := provider.NewWsProvider(context.Background(), endpoint, false, "", "")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = wsProvider.Close()
	})
	return wsProvider
}

func TestWsProviderStreamsFrames(t *testing.T) {
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {
		assert.Equal(t, "getFuelLogs", frame.Operation)
		assert.Equal(t, "FUEL", frame.Params["chains"])
		assert.Equal(t, "arrow", frame.Format)

		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(frame.Id, provider.FrameKindData, []byte("first")))
		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(frame.Id, provider.FrameKindData, []byte("second")))
		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(frame.Id, provider.FrameKindEnd, nil))
	})
	wsProvider := newTestWsProvider(t, endpoint)

	stream, err := wsProvider.GetFuelLogsByFormat(context.Background(), &requests.GetFuelLogsRequest{}, types.FormatArrow, false)
	require.NoError(t, err)

	chunks, err := provider.ReadAll(context.Background(), stream)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("first"), []byte("second")}, chunks)
}

func TestWsProviderConcurrentOperationsDoNotInterleave(t *testing.T) {
	frames := make(chan wsTestFrame, 2)
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {
		frames <- frame
		if len(frames) < 2 {
			return
		}
		first, second := <-frames, <-frames
		for _, chunk := range []string{"a1", "b1", "a2", "b2", "a3", "b3"} {
			frame := first
			if strings.HasPrefix(chunk, "b") {
				frame = second
			}
			_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(frame.Id, provider.FrameKindData, []byte(chunk)))
		}
		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(first.Id, provider.FrameKindEnd, nil))
		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(second.Id, provider.FrameKindEnd, nil))
	})
	wsProvider := newTestWsProvider(t, endpoint)

	firstStream, err := wsProvider.GetBlocksByFormat(context.Background(), &requests.GetBlocksRequest{}, types.FormatJsonStream, true)
	require.NoError(t, err)
	secondStream, err := wsProvider.GetLogsByFormat(context.Background(), &requests.GetLogsRequest{}, types.FormatJsonStream, true)
	require.NoError(t, err)

	firstChunks, err := provider.ReadAll(context.Background(), firstStream)
	require.NoError(t, err)
	secondChunks, err := provider.ReadAll(context.Background(), secondStream)
	require.NoError(t, err)

	assert.Equal(t, [][]byte{[]byte("a1"), []byte("a2"), []byte("a3")}, firstChunks)
	assert.Equal(t, [][]byte{[]byte("b1"), []byte("b2"), []byte("b3")}, secondChunks)
}

func TestWsProviderCloseSendsCancel(t *testing.T) {
	cancels := make(chan wsTestFrame, 1)
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {
		if frame.Operation == "cancel" {
			cancels <- frame
			return
		}
		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(frame.Id, provider.FrameKindData, []byte("live")))
	})
	wsProvider := newTestWsProvider(t, endpoint)

	stream, err := wsProvider.GetTxsByFormat(context.Background(), &requests.GetTxsRequest{}, types.FormatJsonStream, true)
	require.NoError(t, err)

	chunk, err := stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("live"), chunk)

	require.NoError(t, stream.Close())

	select {
	case cancel := <-cancels:
		assert.EqualValues(t, 1, cancel.Id)
	case <-time.After(time.Second):
		t.Fatal("no cancel frame received")
	}

	_, err = stream.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestWsProviderErrorFrameFailsOperation(t *testing.T) {
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {
		_ = conn.WriteMessage(websocket.BinaryMessage, provider.EncodeDataFrame(frame.Id, provider.FrameKindError, []byte("no such table")))
	})
	wsProvider := newTestWsProvider(t, endpoint)

	stream, err := wsProvider.GetStatusByFormat(context.Background(), types.FormatJsonStream)
	require.NoError(t, err)

	_, err = provider.ReadAll(context.Background(), stream)
	require.Error(t, err)

	var queryError *provider.QueryError
	require.ErrorAs(t, err, &queryError)
	assert.Equal(t, provider.InternalServerErrorCode, queryError.Code)
	assert.Contains(t, err.Error(), "no such table")
}

func TestWsProviderFailsPendingOnConnectionLoss(t *testing.T) {
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {
		_ = conn.Close()
	})
	wsProvider := newTestWsProvider(t, endpoint)

	stream, err := wsProvider.GetStatusByFormat(context.Background(), types.FormatJsonStream)
	require.NoError(t, err)

	_, err = stream.Next(context.Background())
	require.Error(t, err)

	var queryError *provider.QueryError
	require.ErrorAs(t, err, &queryError)
	assert.Equal(t, provider.InternalServerErrorCode, queryError.Code)
}

func TestWsProviderRequestAfterClose(t *testing.T) {
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {})
	wsProvider := newTestWsProvider(t, endpoint)

	require.NoError(t, wsProvider.Close())

	_, err := wsProvider.GetStatusByFormat(context.Background(), types.FormatJsonStream)
	require.Error(t, err)

	var queryError *provider.QueryError
	require.ErrorAs(t, err, &queryError)
	assert.Equal(t, provider.InternalServerErrorCode, queryError.Code)
}

func TestWsProviderNextRespectsContext(t *testing.T) {
	endpoint := newWsTestServer(t, func(conn *websocket.Conn, frame wsTestFrame) {})
	wsProvider := newTestWsProvider(t, endpoint)

	stream, err := wsProvider.GetStatusByFormat(context.Background(), types.FormatJsonStream)
	require.NoError(t, err)
	defer func() {
		_ = stream.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = stream.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
