package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetSparkMarketRequest struct {
	Chains     mapset.Set[chains.ChainId]
	FromBlock  types.Bound
	ToBlock    types.Bound
	MarketIdIn mapset.Set[string]
}

func (r *GetSparkMarketRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("market_id__in", r.MarketIdIn)
	return p
}

type GetSparkOrderRequest struct {
	Chains     mapset.Set[chains.ChainId]
	FromBlock  types.Bound
	ToBlock    types.Bound
	MarketIdIn mapset.Set[string]
	OrderIdIn  mapset.Set[string]
	UserIn     mapset.Set[string]
}

func (r *GetSparkOrderRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("market_id__in", r.MarketIdIn)
	p.setFilter("order_id__in", r.OrderIdIn)
	p.setFilter("user__in", r.UserIn)
	return p
}
