package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetFuelBlocksRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
}

func (r *GetFuelBlocksRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	return p
}

type GetFuelLogsRequest struct {
	Chains     mapset.Set[chains.ChainId]
	FromBlock  types.Bound
	ToBlock    types.Bound
	ContractIn mapset.Set[string]
	RaIn       mapset.Set[string]
	RbIn       mapset.Set[string]
}

func (r *GetFuelLogsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("contract__in", r.ContractIn)
	p.setFilter("ra__in", r.RaIn)
	p.setFilter("rb__in", r.RbIn)
	return p
}

type GetFuelTxsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	HashIn    mapset.Set[string]
}

func (r *GetFuelTxsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("hash__in", r.HashIn)
	return p
}

type GetFuelReceiptsRequest struct {
	Chains     mapset.Set[chains.ChainId]
	FromBlock  types.Bound
	ToBlock    types.Bound
	ContractIn mapset.Set[string]
}

func (r *GetFuelReceiptsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("contract__in", r.ContractIn)
	return p
}

type GetFuelMessagesRequest struct {
	Chains      mapset.Set[chains.ChainId]
	FromBlock   types.Bound
	ToBlock     types.Bound
	SenderIn    mapset.Set[string]
	RecipientIn mapset.Set[string]
}

func (r *GetFuelMessagesRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("sender__in", r.SenderIn)
	p.setFilter("recipient__in", r.RecipientIn)
	return p
}

type GetUtxoRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	OwnerIn   mapset.Set[string]
	AssetIn   mapset.Set[string]
}

func (r *GetUtxoRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("owner__in", r.OwnerIn)
	p.setFilter("asset__in", r.AssetIn)
	return p
}

type GetSrc20Request struct {
	Chains       mapset.Set[chains.ChainId]
	FromBlock    types.Bound
	ToBlock      types.Bound
	ContractIdIn mapset.Set[string]
}

func (r *GetSrc20Request) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("contract_id__in", r.ContractIdIn)
	return p
}

type GetSrc7Request struct {
	Chains       mapset.Set[chains.ChainId]
	FromBlock    types.Bound
	ToBlock      types.Bound
	ContractIdIn mapset.Set[string]
}

func (r *GetSrc7Request) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("contract_id__in", r.ContractIdIn)
	return p
}
