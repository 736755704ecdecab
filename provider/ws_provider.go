package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/pkg/utils"
	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const wsPath = "v1/websocket"

const (
	// Each inbound binary frame carries an 8 byte big-endian operation id
	// followed by a 1 byte frame kind and the payload.
	frameHeaderSize = 9

	FrameKindData  byte = 0
	FrameKindEnd   byte = 1
	FrameKindError byte = 2
)

const (
	opQueueSize = 64

	wsReadBuffer  = 1024
	wsWriteBuffer = 1024

	pingInterval     = 30 * time.Second
	pingWriteTimeout = 10 * time.Second
)

var wsBufferPool = new(sync.Pool)

var wsOperationsGauge = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "chainquery",
		Subsystem: "ws",
		Name:      "operations",
		Help:      "Number of in-flight operations per endpoint",
	},
	[]string{"endpoint"},
)

func init() {
	prometheus.MustRegister(wsOperationsGauge)
}

type wsRequestFrame struct {
	Id        uint64          `json:"id"`
	Operation Operation       `json:"operation"`
	Params    requests.Params `json:"params,omitempty"`
	Format    types.Format    `json:"format,omitempty"`
	Deltas    bool            `json:"deltas,omitempty"`
}

type wsFrame struct {
	payload []byte
	end     bool
}

type wsOp struct {
	frames   chan wsFrame
	done     chan struct{}
	err      error
	finished sync.Once
}

func newWsOp() *wsOp {
	return &wsOp{
		frames: make(chan wsFrame, opQueueSize),
		done:   make(chan struct{}),
	}
}

// fail terminates the operation with an error; the write to err
// happens before done is closed.
func (o *wsOp) fail(err error) {
	o.finished.Do(func() {
		o.err = err
		close(o.done)
	})
}

// WsProvider multiplexes many concurrent operations over one websocket
// connection. Outbound request frames are JSON text messages, inbound frames
// are binary messages demultiplexed by operation id. The connection never
// reconnects on its own; once lost, every pending operation fails and the
// provider must be recreated by the caller.
type WsProvider struct {
	endpoint   string
	connId     string
	conn       *websocket.Conn
	writeMutex sync.Mutex
	closed     atomic.Bool
	opId       atomic.Uint64
	ops        *utils.CMap[uint64, wsOp]
}

var (
	_ Provider          = (*WsProvider)(nil)
	_ ChainProvider     = (*WsProvider)(nil)
	_ UniswapV2Provider = (*WsProvider)(nil)
	_ UniswapV3Provider = (*WsProvider)(nil)
	_ CurveProvider     = (*WsProvider)(nil)
	_ Erc20Provider     = (*WsProvider)(nil)
	_ FuelProvider      = (*WsProvider)(nil)
	_ MoveProvider      = (*WsProvider)(nil)
	_ BtcProvider       = (*WsProvider)(nil)
)

func NewWsProvider(ctx context.Context, endpoint string, secure bool, username, password string) (*WsProvider, error) {
	scheme := lo.Ternary(secure, "wss", "ws")
	wsUrl := fmt.Sprintf("%s://%s/%s", scheme, endpoint, wsPath)

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 10 * time.Second,
		ReadBufferSize:   wsReadBuffer,
		WriteBufferSize:  wsWriteBuffer,
		WriteBufferPool:  wsBufferPool,
	}

	var header http.Header
	if username != "" && password != "" {
		header = http.Header{}
		header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(username+":"+password)))
	}

	conn, resp, err := dialer.DialContext(ctx, wsUrl, header)
	if err != nil {
		return nil, ServerError(fmt.Errorf("unable to connect to %s: %v", wsUrl, err))
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	provider := &WsProvider{
		endpoint: endpoint,
		connId:   uuid.NewString(),
		conn:     conn,
		ops:      utils.NewCMap[uint64, wsOp](),
	}

	group, groupCtx := errgroup.WithContext(context.WithoutCancel(ctx))
	group.Go(func() error {
		return provider.processFrames()
	})
	group.Go(func() error {
		return provider.keepAlive(groupCtx)
	})
	go func() {
		err := group.Wait()
		if err != nil && !provider.closed.Load() {
			log.Warn().Err(err).Msgf("ws connection %s to %s is down", provider.connId, provider.endpoint)
		}
	}()

	log.Info().Msgf("established ws connection %s to %s", provider.connId, provider.endpoint)
	return provider, nil
}

func (w *WsProvider) processFrames() error {
	for {
		messageType, message, err := w.conn.ReadMessage()
		if err != nil {
			w.failAll(ServerError(fmt.Errorf("connection lost: %v", err)))
			return err
		}
		if messageType != websocket.BinaryMessage {
			log.Warn().Msgf("unexpected text frame on ws connection %s", w.connId)
			continue
		}
		if len(message) < frameHeaderSize {
			log.Warn().Msgf("malformed frame of %d bytes on ws connection %s", len(message), w.connId)
			continue
		}

		id := binary.BigEndian.Uint64(message[:8])
		kind := message[8]
		payload := message[frameHeaderSize:]

		op, ok := w.ops.Load(id)
		if !ok {
			// late frames of an already cancelled operation
			continue
		}

		switch kind {
		case FrameKindData:
			chunk := make([]byte, len(payload))
			copy(chunk, payload)
			select {
			case op.frames <- wsFrame{payload: chunk}:
			default:
				w.ops.Delete(id)
				op.fail(ServerError(fmt.Errorf("slow consumer, operation %d dropped", id)))
			}
		case FrameKindEnd:
			w.ops.Delete(id)
			select {
			case op.frames <- wsFrame{end: true}:
			default:
				op.fail(ServerError(fmt.Errorf("slow consumer, operation %d dropped", id)))
			}
		case FrameKindError:
			w.ops.Delete(id)
			op.fail(ServerError(fmt.Errorf("operation %d failed: %s", id, string(payload))))
		default:
			log.Warn().Msgf("unknown frame kind %d on ws connection %s", kind, w.connId)
		}
	}
}

func (w *WsProvider) keepAlive(ctx context.Context) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := w.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWriteTimeout))
			if err != nil {
				return err
			}
		}
	}
}

// Request sends a raw operation frame and returns the stream of its inbound
// frames. It is the escape hatch under every typed method.
func (w *WsProvider) Request(ctx context.Context, operation Operation, params requests.Params, format types.Format, deltas bool) (StreamResponse, error) {
	if w.closed.Load() {
		return nil, ServerError(fmt.Errorf("connection %s is closed", w.connId))
	}

	id := w.opId.Add(1)
	frame, err := sonic.Marshal(wsRequestFrame{
		Id:        id,
		Operation: operation,
		Params:    params,
		Format:    format,
		Deltas:    deltas,
	})
	if err != nil {
		return nil, ClientError(fmt.Errorf("unable to serialize a request frame: %v", err))
	}

	op := newWsOp()
	w.ops.Store(id, op)

	if err := w.writeMessage(frame); err != nil {
		w.ops.Delete(id)
		return nil, ServerError(fmt.Errorf("unable to send a request frame: %v", err))
	}

	wsOperationsGauge.WithLabelValues(w.endpoint).Inc()
	zerolog.Ctx(ctx).Debug().Msgf("started operation %d (%s) on ws connection %s", id, operation, w.connId)

	return &wsStream{provider: w, id: id, op: op}, nil
}

func (w *WsProvider) writeMessage(message []byte) error {
	w.writeMutex.Lock()
	defer w.writeMutex.Unlock()
	return w.conn.WriteMessage(websocket.TextMessage, message)
}

func (w *WsProvider) cancelOperation(id uint64) {
	frame, err := sonic.Marshal(wsRequestFrame{Id: id, Operation: OpCancel})
	if err == nil {
		err = w.writeMessage(frame)
	}
	if err != nil {
		log.Warn().Err(err).Msgf("unable to cancel operation %d on ws connection %s", id, w.connId)
	}
}

func (w *WsProvider) failAll(err error) {
	w.ops.Range(func(id uint64, op *wsOp) bool {
		w.ops.Delete(id)
		op.fail(err)
		return true
	})
}

// Close tears the connection down and fails every pending operation.
func (w *WsProvider) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := w.conn.Close()
	w.failAll(ServerError(fmt.Errorf("connection %s is closed", w.connId)))
	log.Info().Msgf("closed ws connection %s to %s", w.connId, w.endpoint)
	return err
}

type wsStream struct {
	provider *WsProvider
	id       uint64
	op       *wsOp
	closed   atomic.Bool
}

func (s *wsStream) Next(ctx context.Context) ([]byte, error) {
	if s.closed.Load() {
		return nil, io.EOF
	}

	// buffered frames are served even after the operation terminated
	select {
	case frame := <-s.op.frames:
		return s.handleFrame(frame)
	default:
	}

	select {
	case frame := <-s.op.frames:
		return s.handleFrame(frame)
	case <-s.op.done:
		s.release()
		return nil, s.op.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *wsStream) handleFrame(frame wsFrame) ([]byte, error) {
	if frame.end {
		s.release()
		return nil, io.EOF
	}
	return frame.payload, nil
}

// release accounts for a naturally finished operation; no cancel frame needed.
func (s *wsStream) release() {
	if s.closed.CompareAndSwap(false, true) {
		s.provider.ops.Delete(s.id)
		wsOperationsGauge.WithLabelValues(s.provider.endpoint).Dec()
	}
}

func (s *wsStream) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	_, pending := s.provider.ops.LoadAndDelete(s.id)
	if pending && !s.provider.closed.Load() {
		s.provider.cancelOperation(s.id)
	}
	wsOperationsGauge.WithLabelValues(s.provider.endpoint).Dec()
	return nil
}

func (w *WsProvider) GetStatusByFormat(ctx context.Context, format types.Format) (StreamResponse, error) {
	return w.Request(ctx, OpGetStatus, nil, format, false)
}

func (w *WsProvider) GetBlocksByFormat(ctx context.Context, request *requests.GetBlocksRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetBlocks, request.Params(), format, deltas)
}

func (w *WsProvider) GetLogsByFormat(ctx context.Context, request *requests.GetLogsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetLogs, request.Params(), format, deltas)
}

func (w *WsProvider) GetTxsByFormat(ctx context.Context, request *requests.GetTxsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetTxs, request.Params(), format, deltas)
}

func (w *WsProvider) GetTransfersByFormat(ctx context.Context, request *requests.GetTransfersRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetTransfers, request.Params(), format, deltas)
}

func (w *WsProvider) GetUniswapV2PairsByFormat(ctx context.Context, request *requests.GetUniswapV2PairsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetUniswapV2Pairs, request.Params(), format, deltas)
}

func (w *WsProvider) GetUniswapV2PricesByFormat(ctx context.Context, request *requests.GetUniswapV2PricesRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetUniswapV2Prices, request.Params(), format, deltas)
}

func (w *WsProvider) GetUniswapV3FeesByFormat(ctx context.Context, request *requests.GetUniswapV3FeesRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetUniswapV3Fees, request.Params(), format, deltas)
}

func (w *WsProvider) GetUniswapV3PoolsByFormat(ctx context.Context, request *requests.GetUniswapV3PoolsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetUniswapV3Pools, request.Params(), format, deltas)
}

func (w *WsProvider) GetUniswapV3PricesByFormat(ctx context.Context, request *requests.GetUniswapV3PricesRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetUniswapV3Prices, request.Params(), format, deltas)
}

func (w *WsProvider) GetUniswapV3PositionsByFormat(ctx context.Context, request *requests.GetUniswapV3PositionsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetUniswapV3Positions, request.Params(), format, deltas)
}

func (w *WsProvider) GetCrvTokensByFormat(ctx context.Context, request *requests.GetCrvTokenRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetCurveTokens, request.Params(), format, deltas)
}

func (w *WsProvider) GetCrvPoolsByFormat(ctx context.Context, request *requests.GetCrvPoolRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetCurvePools, request.Params(), format, deltas)
}

func (w *WsProvider) GetCrvPricesByFormat(ctx context.Context, request *requests.GetCrvPriceRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetCurvePrices, request.Params(), format, deltas)
}

func (w *WsProvider) GetErc20ByFormat(ctx context.Context, request *requests.GetErc20Request, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetErc20, request.Params(), format, deltas)
}

func (w *WsProvider) GetErc20ApprovalsByFormat(ctx context.Context, request *requests.GetErc20ApprovalsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetErc20Approvals, request.Params(), format, deltas)
}

func (w *WsProvider) GetErc20TransfersByFormat(ctx context.Context, request *requests.GetErc20TransfersRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetErc20Transfers, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelBlocksByFormat(ctx context.Context, request *requests.GetFuelBlocksRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelBlocks, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelLogsByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelLogs, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelLogsDecodedByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelLogsDecoded, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelTxsByFormat(ctx context.Context, request *requests.GetFuelTxsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelTxs, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelReceiptsByFormat(ctx context.Context, request *requests.GetFuelReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelReceipts, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelMessagesByFormat(ctx context.Context, request *requests.GetFuelMessagesRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelMessages, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelUnspentUtxosByFormat(ctx context.Context, request *requests.GetUtxoRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetFuelUnspentUtxos, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelSparkMarketsByFormat(ctx context.Context, request *requests.GetSparkMarketRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetSparkMarkets, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelSparkOrdersByFormat(ctx context.Context, request *requests.GetSparkOrderRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetSparkOrders, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelSrc20ByFormat(ctx context.Context, request *requests.GetSrc20Request, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetSrc20, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelSrc7ByFormat(ctx context.Context, request *requests.GetSrc7Request, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetSrc7, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelMiraPoolsByFormat(ctx context.Context, request *requests.GetMiraPoolsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMiraPools, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelMiraLiquidityByFormat(ctx context.Context, request *requests.GetMiraLiquidityRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMiraLiquidity, request.Params(), format, deltas)
}

func (w *WsProvider) GetFuelMiraSwapsByFormat(ctx context.Context, request *requests.GetMiraSwapsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMiraSwaps, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveLogsByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveLogs, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveLogsDecodedByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveLogsDecoded, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveTxsByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveTxs, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveTxsDecodedByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveTxsDecoded, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveReceiptsByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveReceipts, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveReceiptsDecodedByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveReceiptsDecoded, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveModulesByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveModules, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveFaTokensByFormat(ctx context.Context, request *requests.GetMoveTokensRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveFaTokens, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveBalancesByFormat(ctx context.Context, request *requests.GetMoveBalancesRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetMoveBalances, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveInterestPoolsByFormat(ctx context.Context, request *requests.GetInterestPoolsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetInterestPools, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveInterestLiquidityByFormat(ctx context.Context, request *requests.GetInterestLiquidityRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetInterestLiquidity, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveInterestSwapsByFormat(ctx context.Context, request *requests.GetInterestSwapsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetInterestSwaps, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveArcheCollateralsByFormat(ctx context.Context, request *requests.GetArcheCollateralsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetArcheCollaterals, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveArcheLoansByFormat(ctx context.Context, request *requests.GetArcheLoansRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetArcheLoans, request.Params(), format, deltas)
}

func (w *WsProvider) GetMoveArchePositionsByFormat(ctx context.Context, request *requests.GetArchePositionsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetArchePositions, request.Params(), format, deltas)
}

func (w *WsProvider) GetMovePythByFormat(ctx context.Context, request *requests.GetPythPricesRequest, format types.Format, deltas bool) (StreamResponse, error) {
	return w.Request(ctx, OpGetPythPrices, request.Params(), format, deltas)
}

func (w *WsProvider) GetBtcBlocksByFormat(ctx context.Context, request *requests.GetBtcBlocksRequest, format types.Format, deltas bool) (StreamResponse, error) {
	params := request.Params()
	params["chains"] = chains.BTC.String()
	return w.Request(ctx, OpGetBtcBlocks, params, format, deltas)
}

func (w *WsProvider) GetBtcTxsByFormat(ctx context.Context, request *requests.GetBtcTxsRequest, format types.Format, deltas bool) (StreamResponse, error) {
	params := request.Params()
	params["chains"] = chains.BTC.String()
	return w.Request(ctx, OpGetBtcTxs, params, format, deltas)
}

// EncodeDataFrame builds a wire-format inbound frame; exported for tests and
// for in-process fakes of the backend.
func EncodeDataFrame(id uint64, kind byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(frameHeaderSize + len(payload))
	_ = binary.Write(&buf, binary.BigEndian, id)
	buf.WriteByte(kind)
	buf.Write(payload)
	return buf.Bytes()
}
