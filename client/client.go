package client

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/provider"
	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
)

// Client wraps a transport provider and validates the chain scope of family
// bound queries before anything touches the network. EVM and UTXO queries
// pass through untouched; Fuel and Move queries reject chains outside their
// family. A nil chain set means "use the family default" and always passes.
type Client[T provider.Provider] struct {
	inner T
}

func NewClient[T provider.Provider](inner T) *Client[T] {
	return &Client[T]{inner: inner}
}

// Inner exposes the wrapped provider, e.g. to close a ws connection.
func (c *Client[T]) Inner() T {
	return c.inner
}

func checkChains(set mapset.Set[chains.ChainId], family chains.Family, allowed mapset.Set[chains.ChainId]) error {
	if set == nil {
		return nil
	}
	if set.IsEmpty() {
		return provider.ValidationError(fmt.Sprintf("no chains provided for a %s query", family))
	}
	if diff := set.Difference(allowed); !diff.IsEmpty() {
		return provider.ValidationError(fmt.Sprintf(
			"chains [%s] do not belong to the %s family, allowed chains are [%s]",
			requests.JoinFilter(diff), family, requests.JoinFilter(allowed),
		))
	}
	return nil
}

func checkFuelChains(set mapset.Set[chains.ChainId]) error {
	return checkChains(set, chains.FuelFamily, chains.FuelChains())
}

func checkMoveChains(set mapset.Set[chains.ChainId]) error {
	return checkChains(set, chains.MoveFamily, chains.MoveChains())
}

func capabilityError(capability string) error {
	return provider.ClientError(fmt.Errorf("the underlying provider does not support %s queries", capability))
}

func (c *Client[T]) chainProvider() (provider.ChainProvider, error) {
	if p, ok := any(c.inner).(provider.ChainProvider); ok {
		return p, nil
	}
	return nil, capabilityError("chain")
}

func (c *Client[T]) uniswapV2Provider() (provider.UniswapV2Provider, error) {
	if p, ok := any(c.inner).(provider.UniswapV2Provider); ok {
		return p, nil
	}
	return nil, capabilityError("uniswap v2")
}

func (c *Client[T]) uniswapV3Provider() (provider.UniswapV3Provider, error) {
	if p, ok := any(c.inner).(provider.UniswapV3Provider); ok {
		return p, nil
	}
	return nil, capabilityError("uniswap v3")
}

func (c *Client[T]) curveProvider() (provider.CurveProvider, error) {
	if p, ok := any(c.inner).(provider.CurveProvider); ok {
		return p, nil
	}
	return nil, capabilityError("curve")
}

func (c *Client[T]) erc20Provider() (provider.Erc20Provider, error) {
	if p, ok := any(c.inner).(provider.Erc20Provider); ok {
		return p, nil
	}
	return nil, capabilityError("erc20")
}

func (c *Client[T]) fuelProvider() (provider.FuelProvider, error) {
	if p, ok := any(c.inner).(provider.FuelProvider); ok {
		return p, nil
	}
	return nil, capabilityError("fuel")
}

func (c *Client[T]) moveProvider() (provider.MoveProvider, error) {
	if p, ok := any(c.inner).(provider.MoveProvider); ok {
		return p, nil
	}
	return nil, capabilityError("move")
}

func (c *Client[T]) btcProvider() (provider.BtcProvider, error) {
	if p, ok := any(c.inner).(provider.BtcProvider); ok {
		return p, nil
	}
	return nil, capabilityError("btc")
}

func (c *Client[T]) GetStatusByFormat(ctx context.Context, format types.Format) (provider.StreamResponse, error) {
	return c.inner.GetStatusByFormat(ctx, format)
}

func (c *Client[T]) GetBlocksByFormat(ctx context.Context, request *requests.GetBlocksRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.chainProvider()
	if err != nil {
		return nil, err
	}
	return p.GetBlocksByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetLogsByFormat(ctx context.Context, request *requests.GetLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.chainProvider()
	if err != nil {
		return nil, err
	}
	return p.GetLogsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetTxsByFormat(ctx context.Context, request *requests.GetTxsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.chainProvider()
	if err != nil {
		return nil, err
	}
	return p.GetTxsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetTransfersByFormat(ctx context.Context, request *requests.GetTransfersRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.chainProvider()
	if err != nil {
		return nil, err
	}
	return p.GetTransfersByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetUniswapV2PairsByFormat(ctx context.Context, request *requests.GetUniswapV2PairsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.uniswapV2Provider()
	if err != nil {
		return nil, err
	}
	return p.GetUniswapV2PairsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetUniswapV2PricesByFormat(ctx context.Context, request *requests.GetUniswapV2PricesRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.uniswapV2Provider()
	if err != nil {
		return nil, err
	}
	return p.GetUniswapV2PricesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetUniswapV3FeesByFormat(ctx context.Context, request *requests.GetUniswapV3FeesRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.uniswapV3Provider()
	if err != nil {
		return nil, err
	}
	return p.GetUniswapV3FeesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetUniswapV3PoolsByFormat(ctx context.Context, request *requests.GetUniswapV3PoolsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.uniswapV3Provider()
	if err != nil {
		return nil, err
	}
	return p.GetUniswapV3PoolsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetUniswapV3PricesByFormat(ctx context.Context, request *requests.GetUniswapV3PricesRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.uniswapV3Provider()
	if err != nil {
		return nil, err
	}
	return p.GetUniswapV3PricesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetUniswapV3PositionsByFormat(ctx context.Context, request *requests.GetUniswapV3PositionsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.uniswapV3Provider()
	if err != nil {
		return nil, err
	}
	return p.GetUniswapV3PositionsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetCrvTokensByFormat(ctx context.Context, request *requests.GetCrvTokenRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.curveProvider()
	if err != nil {
		return nil, err
	}
	return p.GetCrvTokensByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetCrvPoolsByFormat(ctx context.Context, request *requests.GetCrvPoolRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.curveProvider()
	if err != nil {
		return nil, err
	}
	return p.GetCrvPoolsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetCrvPricesByFormat(ctx context.Context, request *requests.GetCrvPriceRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.curveProvider()
	if err != nil {
		return nil, err
	}
	return p.GetCrvPricesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetErc20ByFormat(ctx context.Context, request *requests.GetErc20Request, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.erc20Provider()
	if err != nil {
		return nil, err
	}
	return p.GetErc20ByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetErc20ApprovalsByFormat(ctx context.Context, request *requests.GetErc20ApprovalsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.erc20Provider()
	if err != nil {
		return nil, err
	}
	return p.GetErc20ApprovalsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetErc20TransfersByFormat(ctx context.Context, request *requests.GetErc20TransfersRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.erc20Provider()
	if err != nil {
		return nil, err
	}
	return p.GetErc20TransfersByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelBlocksByFormat(ctx context.Context, request *requests.GetFuelBlocksRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelBlocksByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelLogsByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelLogsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelLogsDecodedByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelLogsDecodedByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelTxsByFormat(ctx context.Context, request *requests.GetFuelTxsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelTxsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelReceiptsByFormat(ctx context.Context, request *requests.GetFuelReceiptsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelReceiptsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelMessagesByFormat(ctx context.Context, request *requests.GetFuelMessagesRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelMessagesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelUnspentUtxosByFormat(ctx context.Context, request *requests.GetUtxoRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelUnspentUtxosByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelSparkMarketsByFormat(ctx context.Context, request *requests.GetSparkMarketRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelSparkMarketsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelSparkOrdersByFormat(ctx context.Context, request *requests.GetSparkOrderRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelSparkOrdersByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelSrc20ByFormat(ctx context.Context, request *requests.GetSrc20Request, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelSrc20ByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelSrc7ByFormat(ctx context.Context, request *requests.GetSrc7Request, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelSrc7ByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelMiraPoolsByFormat(ctx context.Context, request *requests.GetMiraPoolsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelMiraPoolsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelMiraLiquidityByFormat(ctx context.Context, request *requests.GetMiraLiquidityRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelMiraLiquidityByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetFuelMiraSwapsByFormat(ctx context.Context, request *requests.GetMiraSwapsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.fuelProvider()
	if err != nil {
		return nil, err
	}
	if err := checkFuelChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetFuelMiraSwapsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveLogsByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveLogsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveLogsDecodedByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveLogsDecodedByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveTxsByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveTxsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveTxsDecodedByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveTxsDecodedByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveReceiptsByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveReceiptsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveReceiptsDecodedByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveReceiptsDecodedByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveModulesByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveModulesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveFaTokensByFormat(ctx context.Context, request *requests.GetMoveTokensRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveFaTokensByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveBalancesByFormat(ctx context.Context, request *requests.GetMoveBalancesRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveBalancesByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveInterestPoolsByFormat(ctx context.Context, request *requests.GetInterestPoolsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveInterestPoolsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveInterestLiquidityByFormat(ctx context.Context, request *requests.GetInterestLiquidityRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveInterestLiquidityByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveInterestSwapsByFormat(ctx context.Context, request *requests.GetInterestSwapsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveInterestSwapsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveArcheCollateralsByFormat(ctx context.Context, request *requests.GetArcheCollateralsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveArcheCollateralsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveArcheLoansByFormat(ctx context.Context, request *requests.GetArcheLoansRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveArcheLoansByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMoveArchePositionsByFormat(ctx context.Context, request *requests.GetArchePositionsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMoveArchePositionsByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetMovePythByFormat(ctx context.Context, request *requests.GetPythPricesRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.moveProvider()
	if err != nil {
		return nil, err
	}
	if err := checkMoveChains(request.Chains); err != nil {
		return nil, err
	}
	return p.GetMovePythByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetBtcBlocksByFormat(ctx context.Context, request *requests.GetBtcBlocksRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.btcProvider()
	if err != nil {
		return nil, err
	}
	return p.GetBtcBlocksByFormat(ctx, request, format, deltas)
}

func (c *Client[T]) GetBtcTxsByFormat(ctx context.Context, request *requests.GetBtcTxsRequest, format types.Format, deltas bool) (provider.StreamResponse, error) {
	p, err := c.btcProvider()
	if err != nil {
		return nil, err
	}
	return p.GetBtcTxsByFormat(ctx, request, format, deltas)
}
