package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetMoveLogsRequest struct {
	Chains      mapset.Set[chains.ChainId]
	FromBlock   types.Bound
	ToBlock     types.Bound
	AddressIn   mapset.Set[string]
	StructTagIn mapset.Set[string]
}

func (r *GetMoveLogsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("address__in", r.AddressIn)
	p.setFilter("struct_tag__in", r.StructTagIn)
	return p
}

type GetMoveTxsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	SenderIn  mapset.Set[string]
	HashIn    mapset.Set[string]
}

func (r *GetMoveTxsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("sender__in", r.SenderIn)
	p.setFilter("hash__in", r.HashIn)
	return p
}

type GetMoveReceiptsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	AddressIn mapset.Set[string]
	ModuleIn  mapset.Set[string]
}

func (r *GetMoveReceiptsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("address__in", r.AddressIn)
	p.setFilter("module__in", r.ModuleIn)
	return p
}

type GetMoveTokensRequest struct {
	Chains      mapset.Set[chains.ChainId]
	FromBlock   types.Bound
	ToBlock     types.Bound
	AssetTypeIn mapset.Set[string]
}

func (r *GetMoveTokensRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("asset_type__in", r.AssetTypeIn)
	return p
}

type GetMoveBalancesRequest struct {
	Chains      mapset.Set[chains.ChainId]
	FromBlock   types.Bound
	ToBlock     types.Bound
	OwnerIn     mapset.Set[string]
	AssetTypeIn mapset.Set[string]
}

func (r *GetMoveBalancesRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("owner__in", r.OwnerIn)
	p.setFilter("asset_type__in", r.AssetTypeIn)
	return p
}
