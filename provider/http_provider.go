package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const apiPath = "v1/api/"

// MaxChunkSize bounds the size of one stream chunk.
const MaxChunkSize = 8192

// HttpProvider issues one stateless GET per query and streams the response
// body back in bounded chunks. The deltas flag has no meaning here and is
// ignored by every method.
type HttpProvider struct {
	httpClient *http.Client
	baseUrl    *url.URL
	authHeader string
}

var (
	_ Provider          = (*HttpProvider)(nil)
	_ ChainProvider     = (*HttpProvider)(nil)
	_ UniswapV2Provider = (*HttpProvider)(nil)
	_ UniswapV3Provider = (*HttpProvider)(nil)
	_ CurveProvider     = (*HttpProvider)(nil)
	_ Erc20Provider     = (*HttpProvider)(nil)
	_ FuelProvider      = (*HttpProvider)(nil)
	_ MoveProvider      = (*HttpProvider)(nil)
	_ BtcProvider       = (*HttpProvider)(nil)
)

func NewHttpProvider(endpoint string, secure bool, username, password string) (*HttpProvider, error) {
	scheme := lo.Ternary(secure, "https", "http")
	baseUrl, err := url.Parse(fmt.Sprintf("%s://%s/%s", scheme, endpoint, apiPath))
	if err != nil {
		return nil, ClientError(fmt.Errorf("error parsing the endpoint: %v", err))
	}

	var authHeader string
	if username != "" && password != "" {
		authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
	}

	return &HttpProvider{
		httpClient: &http.Client{Transport: defaultHttpTransport()},
		baseUrl:    baseUrl,
		authHeader: authHeader,
	}, nil
}

func NewHttpProviderWithClient(endpoint string, secure bool, username, password string, httpClient *http.Client) (*HttpProvider, error) {
	httpProvider, err := NewHttpProvider(endpoint, secure, username, password)
	if err != nil {
		return nil, err
	}
	httpProvider.httpClient = httpClient
	return httpProvider, nil
}

func (h *HttpProvider) request(ctx context.Context, path string, params requests.Params, format types.Format) (StreamResponse, error) {
	requestUrl := h.baseUrl.JoinPath(path)
	values := params.Values()
	values.Set("format", format.String())
	requestUrl.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl.String(), nil)
	if err != nil {
		return nil, ClientError(fmt.Errorf("error creating an http request: %v", err))
	}
	if h.authHeader != "" {
		req.Header.Set("Authorization", h.authHeader)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, ServerError(fmt.Errorf("unable to get an http response: %v", err))
	}

	zerolog.Ctx(ctx).Debug().Msgf("streaming response of %s", requestUrl.Path)
	return newHttpStream(resp.Body), nil
}

func defaultHttpTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:          1024,
		MaxIdleConnsPerHost:   256,
		MaxConnsPerHost:       0,
		IdleConnTimeout:       90 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 5 * time.Second,
	}
}

type httpStream struct {
	body   io.ReadCloser
	buf    []byte
	closed atomic.Bool
}

func newHttpStream(body io.ReadCloser) *httpStream {
	return &httpStream{
		body: body,
		buf:  make([]byte, MaxChunkSize),
	}
}

func (s *httpStream) Next(ctx context.Context) ([]byte, error) {
	if s.closed.Load() {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		_ = s.Close()
		return nil, err
	}

	for {
		n, err := s.body.Read(s.buf)
		if n > 0 {
			// a read error, if any, resurfaces on the next call
			chunk := make([]byte, n)
			copy(chunk, s.buf[:n])
			return chunk, nil
		}
		if err == io.EOF {
			_ = s.Close()
			return nil, io.EOF
		}
		if err != nil {
			_ = s.Close()
			return nil, ServerError(fmt.Errorf("unable to read an http response: %v", err))
		}
	}
}

func (s *httpStream) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		return s.body.Close()
	}
	return nil
}

const statusPath = "status"

func (h *HttpProvider) GetStatusByFormat(ctx context.Context, format types.Format) (StreamResponse, error) {
	return h.request(ctx, statusPath, nil, format)
}

const (
	ethereumBlocksPath       = "blocks"
	ethereumLogsPath         = "logs"
	ethereumTransactionsPath = "transactions"
	ethereumTransfersPath    = "transfers"
)

func (h *HttpProvider) GetBlocksByFormat(ctx context.Context, request *requests.GetBlocksRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, ethereumBlocksPath, request.Params(), format)
}

func (h *HttpProvider) GetLogsByFormat(ctx context.Context, request *requests.GetLogsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, ethereumLogsPath, request.Params(), format)
}

func (h *HttpProvider) GetTxsByFormat(ctx context.Context, request *requests.GetTxsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, ethereumTransactionsPath, request.Params(), format)
}

func (h *HttpProvider) GetTransfersByFormat(ctx context.Context, request *requests.GetTransfersRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, ethereumTransfersPath, request.Params(), format)
}

const (
	uniswapV2PairsPath  = "uniswap/v2/pairs"
	uniswapV2PricesPath = "uniswap/v2/prices"
)

func (h *HttpProvider) GetUniswapV2PairsByFormat(ctx context.Context, request *requests.GetUniswapV2PairsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, uniswapV2PairsPath, request.Params(), format)
}

func (h *HttpProvider) GetUniswapV2PricesByFormat(ctx context.Context, request *requests.GetUniswapV2PricesRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, uniswapV2PricesPath, request.Params(), format)
}

const (
	uniswapV3FeesPath      = "uniswap/v3/fees"
	uniswapV3PoolsPath     = "uniswap/v3/pools"
	uniswapV3PricesPath    = "uniswap/v3/prices"
	uniswapV3PositionsPath = "uniswap/v3/positions"
)

func (h *HttpProvider) GetUniswapV3FeesByFormat(ctx context.Context, request *requests.GetUniswapV3FeesRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, uniswapV3FeesPath, request.Params(), format)
}

func (h *HttpProvider) GetUniswapV3PoolsByFormat(ctx context.Context, request *requests.GetUniswapV3PoolsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, uniswapV3PoolsPath, request.Params(), format)
}

func (h *HttpProvider) GetUniswapV3PricesByFormat(ctx context.Context, request *requests.GetUniswapV3PricesRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, uniswapV3PricesPath, request.Params(), format)
}

func (h *HttpProvider) GetUniswapV3PositionsByFormat(ctx context.Context, request *requests.GetUniswapV3PositionsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, uniswapV3PositionsPath, request.Params(), format)
}

const (
	curveTokensPath = "curve/tokens"
	curvePoolsPath  = "curve/pools"
	curvePricesPath = "curve/prices"
)

func (h *HttpProvider) GetCrvTokensByFormat(ctx context.Context, request *requests.GetCrvTokenRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, curveTokensPath, request.Params(), format)
}

func (h *HttpProvider) GetCrvPoolsByFormat(ctx context.Context, request *requests.GetCrvPoolRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, curvePoolsPath, request.Params(), format)
}

func (h *HttpProvider) GetCrvPricesByFormat(ctx context.Context, request *requests.GetCrvPriceRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, curvePricesPath, request.Params(), format)
}

const (
	erc20TokensPath    = "erc20"
	erc20ApprovalsPath = "erc20/approvals"
	erc20TransfersPath = "erc20/transfers"
)

func (h *HttpProvider) GetErc20ByFormat(ctx context.Context, request *requests.GetErc20Request, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, erc20TokensPath, request.Params(), format)
}

func (h *HttpProvider) GetErc20ApprovalsByFormat(ctx context.Context, request *requests.GetErc20ApprovalsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, erc20ApprovalsPath, request.Params(), format)
}

func (h *HttpProvider) GetErc20TransfersByFormat(ctx context.Context, request *requests.GetErc20TransfersRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, erc20TransfersPath, request.Params(), format)
}

const (
	fuelBlocksPath       = "blocks"
	fuelLogsPath         = "logs"
	fuelLogsDecodedPath  = "logs/decoded"
	fuelTransactionsPath = "transactions"
	fuelUnspentUtxosPath = "transactions/outputs"
	fuelReceiptsPath     = "receipts"
	fuelMessagesPath     = "messages"
	fuelSparkMarketsPath = "spark/markets"
	fuelSparkOrdersPath  = "spark/orders"
	fuelSrc20Path        = "src20"
	fuelSrc7Path         = "src7"
	fuelMiraPoolsPath    = "mira/v1/pools"
	fuelMiraLiquidity    = "mira/v1/liquidity"
	fuelMiraSwapsPath    = "mira/v1/swaps"
)

func (h *HttpProvider) GetFuelBlocksByFormat(ctx context.Context, request *requests.GetFuelBlocksRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelBlocksPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelLogsByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelLogsPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelLogsDecodedByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelLogsDecodedPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelTxsByFormat(ctx context.Context, request *requests.GetFuelTxsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelTransactionsPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelReceiptsByFormat(ctx context.Context, request *requests.GetFuelReceiptsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelReceiptsPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelMessagesByFormat(ctx context.Context, request *requests.GetFuelMessagesRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelMessagesPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelUnspentUtxosByFormat(ctx context.Context, request *requests.GetUtxoRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelUnspentUtxosPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelSparkMarketsByFormat(ctx context.Context, request *requests.GetSparkMarketRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelSparkMarketsPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelSparkOrdersByFormat(ctx context.Context, request *requests.GetSparkOrderRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelSparkOrdersPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelSrc20ByFormat(ctx context.Context, request *requests.GetSrc20Request, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelSrc20Path, request.Params(), format)
}

func (h *HttpProvider) GetFuelSrc7ByFormat(ctx context.Context, request *requests.GetSrc7Request, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelSrc7Path, request.Params(), format)
}

func (h *HttpProvider) GetFuelMiraPoolsByFormat(ctx context.Context, request *requests.GetMiraPoolsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelMiraPoolsPath, request.Params(), format)
}

func (h *HttpProvider) GetFuelMiraLiquidityByFormat(ctx context.Context, request *requests.GetMiraLiquidityRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelMiraLiquidity, request.Params(), format)
}

func (h *HttpProvider) GetFuelMiraSwapsByFormat(ctx context.Context, request *requests.GetMiraSwapsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, fuelMiraSwapsPath, request.Params(), format)
}

const (
	moveLogsPath            = "logs"
	moveLogsDecodedPath     = "logs/decoded"
	moveTransactionsPath    = "transactions"
	moveTxsDecodedPath      = "transactions/decoded"
	moveReceiptsPath        = "receipts"
	moveReceiptsDecodedPath = "receipts/decoded"
	moveModulesPath         = "modules"
	moveFaTokensPath        = "fa-tokens"
	moveBalancesPath        = "balances"
	moveInterestPoolsPath   = "interest/v1/pools"
	moveInterestLiqPath     = "interest/v1/liquidity"
	moveInterestSwapsPath   = "interest/v1/swaps"
	moveArcheCollateralsP   = "arche/collaterals"
	moveArcheLoansPath      = "arche/loans"
	moveArchePositionsPath  = "arche/positions"
	movePythPath            = "pyth"
)

func (h *HttpProvider) GetMoveLogsByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveLogsPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveLogsDecodedByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveLogsDecodedPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveTxsByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveTransactionsPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveTxsDecodedByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveTxsDecodedPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveReceiptsByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveReceiptsPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveReceiptsDecodedByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveReceiptsDecodedPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveModulesByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveModulesPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveFaTokensByFormat(ctx context.Context, request *requests.GetMoveTokensRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveFaTokensPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveBalancesByFormat(ctx context.Context, request *requests.GetMoveBalancesRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveBalancesPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveInterestPoolsByFormat(ctx context.Context, request *requests.GetInterestPoolsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveInterestPoolsPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveInterestLiquidityByFormat(ctx context.Context, request *requests.GetInterestLiquidityRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveInterestLiqPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveInterestSwapsByFormat(ctx context.Context, request *requests.GetInterestSwapsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveInterestSwapsPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveArcheCollateralsByFormat(ctx context.Context, request *requests.GetArcheCollateralsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveArcheCollateralsP, request.Params(), format)
}

func (h *HttpProvider) GetMoveArcheLoansByFormat(ctx context.Context, request *requests.GetArcheLoansRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveArcheLoansPath, request.Params(), format)
}

func (h *HttpProvider) GetMoveArchePositionsByFormat(ctx context.Context, request *requests.GetArchePositionsRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, moveArchePositionsPath, request.Params(), format)
}

func (h *HttpProvider) GetMovePythByFormat(ctx context.Context, request *requests.GetPythPricesRequest, format types.Format, _ bool) (StreamResponse, error) {
	return h.request(ctx, movePythPath, request.Params(), format)
}

const (
	btcBlocksPath       = "blocks"
	btcTransactionsPath = "transactions"
)

// The backend serves exactly one UTXO chain, so the caller-supplied chain set
// is overwritten rather than validated.

func (h *HttpProvider) GetBtcBlocksByFormat(ctx context.Context, request *requests.GetBtcBlocksRequest, format types.Format, _ bool) (StreamResponse, error) {
	params := request.Params()
	params["chains"] = chains.BTC.String()
	return h.request(ctx, btcBlocksPath, params, format)
}

func (h *HttpProvider) GetBtcTxsByFormat(ctx context.Context, request *requests.GetBtcTxsRequest, format types.Format, _ bool) (StreamResponse, error) {
	params := request.Params()
	params["chains"] = chains.BTC.String()
	return h.request(ctx, btcTransactionsPath, params, format)
}
