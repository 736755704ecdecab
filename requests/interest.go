package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetInterestPoolsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	PoolIdIn  mapset.Set[string]
}

func (r *GetInterestPoolsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_id__in", r.PoolIdIn)
	return p
}

type GetInterestLiquidityRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	PoolIdIn  mapset.Set[string]
	SenderIn  mapset.Set[string]
}

func (r *GetInterestLiquidityRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_id__in", r.PoolIdIn)
	p.setFilter("sender__in", r.SenderIn)
	return p
}

type GetInterestSwapsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	PoolIdIn  mapset.Set[string]
	SenderIn  mapset.Set[string]
}

func (r *GetInterestSwapsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_id__in", r.PoolIdIn)
	p.setFilter("sender__in", r.SenderIn)
	return p
}
