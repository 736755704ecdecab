package provider

import (
	"context"

	"github.com/drpcorg/chainquery/requests"
	"github.com/drpcorg/chainquery/types"
)

// Operation identifies a resource family and query kind on the streaming
// transport; it correlates an outbound request frame with its inbound frames.
type Operation string

const (
	OpGetStatus Operation = "getStatus"
	OpCancel    Operation = "cancel"

	OpGetBlocks    Operation = "getBlocks"
	OpGetLogs      Operation = "getLogs"
	OpGetTxs       Operation = "getTxs"
	OpGetTransfers Operation = "getTransfers"

	OpGetUniswapV2Pairs  Operation = "getUniswapV2Pairs"
	OpGetUniswapV2Prices Operation = "getUniswapV2Prices"

	OpGetUniswapV3Fees      Operation = "getUniswapV3Fees"
	OpGetUniswapV3Pools     Operation = "getUniswapV3Pools"
	OpGetUniswapV3Prices    Operation = "getUniswapV3Prices"
	OpGetUniswapV3Positions Operation = "getUniswapV3Positions"

	OpGetCurveTokens Operation = "getCurveTokens"
	OpGetCurvePools  Operation = "getCurvePools"
	OpGetCurvePrices Operation = "getCurvePrices"

	OpGetErc20          Operation = "getErc20"
	OpGetErc20Approvals Operation = "getErc20Approvals"
	OpGetErc20Transfers Operation = "getErc20Transfers"

	OpGetFuelBlocks       Operation = "getFuelBlocks"
	OpGetFuelLogs         Operation = "getFuelLogs"
	OpGetFuelLogsDecoded  Operation = "getFuelLogsDecoded"
	OpGetFuelTxs          Operation = "getFuelTxs"
	OpGetFuelReceipts     Operation = "getFuelReceipts"
	OpGetFuelMessages     Operation = "getFuelMessages"
	OpGetFuelUnspentUtxos Operation = "getFuelUnspentUtxos"
	OpGetSparkMarkets     Operation = "getSparkMarkets"
	OpGetSparkOrders      Operation = "getSparkOrders"
	OpGetSrc20            Operation = "getSrc20"
	OpGetSrc7             Operation = "getSrc7"
	OpGetMiraPools        Operation = "getMiraPools"
	OpGetMiraLiquidity    Operation = "getMiraLiquidity"
	OpGetMiraSwaps        Operation = "getMiraSwaps"

	OpGetMoveLogs            Operation = "getMoveLogs"
	OpGetMoveLogsDecoded     Operation = "getMoveLogsDecoded"
	OpGetMoveTxs             Operation = "getMoveTxs"
	OpGetMoveTxsDecoded      Operation = "getMoveTxsDecoded"
	OpGetMoveReceipts        Operation = "getMoveReceipts"
	OpGetMoveReceiptsDecoded Operation = "getMoveReceiptsDecoded"
	OpGetMoveModules         Operation = "getMoveModules"
	OpGetMoveFaTokens        Operation = "getMoveFaTokens"
	OpGetMoveBalances        Operation = "getMoveBalances"
	OpGetInterestPools       Operation = "getInterestPools"
	OpGetInterestLiquidity   Operation = "getInterestLiquidity"
	OpGetInterestSwaps       Operation = "getInterestSwaps"
	OpGetArcheCollaterals    Operation = "getArcheCollaterals"
	OpGetArcheLoans          Operation = "getArcheLoans"
	OpGetArchePositions      Operation = "getArchePositions"
	OpGetPythPrices          Operation = "getPythPrices"

	OpGetBtcBlocks Operation = "getBtcBlocks"
	OpGetBtcTxs    Operation = "getBtcTxs"
)

func (o Operation) String() string {
	return string(o)
}

// Provider is the base contract of every backend.
type Provider interface {
	GetStatusByFormat(ctx context.Context, format types.Format) (StreamResponse, error)
}

// ChainProvider serves chain-generic EVM data.
type ChainProvider interface {
	GetBlocksByFormat(ctx context.Context, request *requests.GetBlocksRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetLogsByFormat(ctx context.Context, request *requests.GetLogsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetTxsByFormat(ctx context.Context, request *requests.GetTxsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetTransfersByFormat(ctx context.Context, request *requests.GetTransfersRequest, format types.Format, deltas bool) (StreamResponse, error)
}

type UniswapV2Provider interface {
	GetUniswapV2PairsByFormat(ctx context.Context, request *requests.GetUniswapV2PairsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetUniswapV2PricesByFormat(ctx context.Context, request *requests.GetUniswapV2PricesRequest, format types.Format, deltas bool) (StreamResponse, error)
}

type UniswapV3Provider interface {
	GetUniswapV3FeesByFormat(ctx context.Context, request *requests.GetUniswapV3FeesRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetUniswapV3PoolsByFormat(ctx context.Context, request *requests.GetUniswapV3PoolsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetUniswapV3PricesByFormat(ctx context.Context, request *requests.GetUniswapV3PricesRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetUniswapV3PositionsByFormat(ctx context.Context, request *requests.GetUniswapV3PositionsRequest, format types.Format, deltas bool) (StreamResponse, error)
}

type CurveProvider interface {
	GetCrvTokensByFormat(ctx context.Context, request *requests.GetCrvTokenRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetCrvPoolsByFormat(ctx context.Context, request *requests.GetCrvPoolRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetCrvPricesByFormat(ctx context.Context, request *requests.GetCrvPriceRequest, format types.Format, deltas bool) (StreamResponse, error)
}

type Erc20Provider interface {
	GetErc20ByFormat(ctx context.Context, request *requests.GetErc20Request, format types.Format, deltas bool) (StreamResponse, error)
	GetErc20ApprovalsByFormat(ctx context.Context, request *requests.GetErc20ApprovalsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetErc20TransfersByFormat(ctx context.Context, request *requests.GetErc20TransfersRequest, format types.Format, deltas bool) (StreamResponse, error)
}

// FuelProvider serves data scoped to the Fuel chain family.
type FuelProvider interface {
	GetFuelBlocksByFormat(ctx context.Context, request *requests.GetFuelBlocksRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelLogsByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelLogsDecodedByFormat(ctx context.Context, request *requests.GetFuelLogsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelTxsByFormat(ctx context.Context, request *requests.GetFuelTxsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelReceiptsByFormat(ctx context.Context, request *requests.GetFuelReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelMessagesByFormat(ctx context.Context, request *requests.GetFuelMessagesRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelUnspentUtxosByFormat(ctx context.Context, request *requests.GetUtxoRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelSparkMarketsByFormat(ctx context.Context, request *requests.GetSparkMarketRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelSparkOrdersByFormat(ctx context.Context, request *requests.GetSparkOrderRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelSrc20ByFormat(ctx context.Context, request *requests.GetSrc20Request, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelSrc7ByFormat(ctx context.Context, request *requests.GetSrc7Request, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelMiraPoolsByFormat(ctx context.Context, request *requests.GetMiraPoolsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelMiraLiquidityByFormat(ctx context.Context, request *requests.GetMiraLiquidityRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetFuelMiraSwapsByFormat(ctx context.Context, request *requests.GetMiraSwapsRequest, format types.Format, deltas bool) (StreamResponse, error)
}

// MoveProvider serves data scoped to the Move chain family.
type MoveProvider interface {
	GetMoveLogsByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveLogsDecodedByFormat(ctx context.Context, request *requests.GetMoveLogsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveTxsByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveTxsDecodedByFormat(ctx context.Context, request *requests.GetMoveTxsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveReceiptsByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveReceiptsDecodedByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveModulesByFormat(ctx context.Context, request *requests.GetMoveReceiptsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveFaTokensByFormat(ctx context.Context, request *requests.GetMoveTokensRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveBalancesByFormat(ctx context.Context, request *requests.GetMoveBalancesRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveInterestPoolsByFormat(ctx context.Context, request *requests.GetInterestPoolsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveInterestLiquidityByFormat(ctx context.Context, request *requests.GetInterestLiquidityRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveInterestSwapsByFormat(ctx context.Context, request *requests.GetInterestSwapsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveArcheCollateralsByFormat(ctx context.Context, request *requests.GetArcheCollateralsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveArcheLoansByFormat(ctx context.Context, request *requests.GetArcheLoansRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMoveArchePositionsByFormat(ctx context.Context, request *requests.GetArchePositionsRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetMovePythByFormat(ctx context.Context, request *requests.GetPythPricesRequest, format types.Format, deltas bool) (StreamResponse, error)
}

// BtcProvider serves data of the single supported UTXO chain.
type BtcProvider interface {
	GetBtcBlocksByFormat(ctx context.Context, request *requests.GetBtcBlocksRequest, format types.Format, deltas bool) (StreamResponse, error)
	GetBtcTxsByFormat(ctx context.Context, request *requests.GetBtcTxsRequest, format types.Format, deltas bool) (StreamResponse, error)
}
