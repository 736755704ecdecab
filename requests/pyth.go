package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetPythPricesRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	FeedIdIn  mapset.Set[string]
	SymbolIn  mapset.Set[string]
}

func (r *GetPythPricesRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultMoveChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("feed_id__in", r.FeedIdIn)
	p.setFilter("symbol__in", r.SymbolIn)
	return p
}
