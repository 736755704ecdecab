package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetErc20Request struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	AddressIn mapset.Set[string]
}

func (r *GetErc20Request) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("address__in", r.AddressIn)
	return p
}

type GetErc20ApprovalsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	AddressIn mapset.Set[string]
	OwnerIn   mapset.Set[string]
	SpenderIn mapset.Set[string]
}

func (r *GetErc20ApprovalsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("address__in", r.AddressIn)
	p.setFilter("owner__in", r.OwnerIn)
	p.setFilter("spender__in", r.SpenderIn)
	return p
}

type GetErc20TransfersRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	AddressIn mapset.Set[string]
	FromIn    mapset.Set[string]
	ToIn      mapset.Set[string]
}

func (r *GetErc20TransfersRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("address__in", r.AddressIn)
	p.setFilter("from__in", r.FromIn)
	p.setFilter("to__in", r.ToIn)
	return p
}
