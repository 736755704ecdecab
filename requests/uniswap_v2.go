package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetUniswapV2PairsRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PairAddressIn mapset.Set[string]
	Token0In      mapset.Set[string]
	Token1In      mapset.Set[string]
	FactoryIn     mapset.Set[string]
}

func (r *GetUniswapV2PairsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pair_address__in", r.PairAddressIn)
	p.setFilter("token0__in", r.Token0In)
	p.setFilter("token1__in", r.Token1In)
	p.setFilter("factory__in", r.FactoryIn)
	return p
}

type GetUniswapV2PricesRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PairAddressIn mapset.Set[string]
	Token0In      mapset.Set[string]
	Token1In      mapset.Set[string]
}

func (r *GetUniswapV2PricesRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pair_address__in", r.PairAddressIn)
	p.setFilter("token0__in", r.Token0In)
	p.setFilter("token1__in", r.Token1In)
	return p
}
