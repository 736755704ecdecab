package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetBtcBlocksRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
}

func (r *GetBtcBlocksRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultBtcChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	return p
}

type GetBtcTxsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	HashIn    mapset.Set[string]
}

func (r *GetBtcTxsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultBtcChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("hash__in", r.HashIn)
	return p
}
