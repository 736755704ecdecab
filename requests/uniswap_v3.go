package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetUniswapV3FeesRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PoolAddressIn mapset.Set[string]
}

func (r *GetUniswapV3FeesRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	return p
}

type GetUniswapV3PoolsRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PoolAddressIn mapset.Set[string]
	Token0In      mapset.Set[string]
	Token1In      mapset.Set[string]
	FactoryIn     mapset.Set[string]
}

func (r *GetUniswapV3PoolsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	p.setFilter("token0__in", r.Token0In)
	p.setFilter("token1__in", r.Token1In)
	p.setFilter("factory__in", r.FactoryIn)
	return p
}

type GetUniswapV3PricesRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PoolAddressIn mapset.Set[string]
}

func (r *GetUniswapV3PricesRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	return p
}

type GetUniswapV3PositionsRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PoolAddressIn mapset.Set[string]
	OwnerIn       mapset.Set[string]
}

func (r *GetUniswapV3PositionsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	p.setFilter("owner__in", r.OwnerIn)
	return p
}
