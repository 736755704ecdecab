package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetArcheCollateralsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	OwnerIn   mapset.Set[string]
	AssetIn   mapset.Set[string]
}

func (r *GetArcheCollateralsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("owner__in", r.OwnerIn)
	p.setFilter("asset__in", r.AssetIn)
	return p
}

type GetArcheLoansRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	OwnerIn   mapset.Set[string]
	AssetIn   mapset.Set[string]
}

func (r *GetArcheLoansRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("owner__in", r.OwnerIn)
	p.setFilter("asset__in", r.AssetIn)
	return p
}

type GetArchePositionsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	OwnerIn   mapset.Set[string]
}

func (r *GetArchePositionsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("owner__in", r.OwnerIn)
	return p
}
