package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetLogsRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
	AddressIn mapset.Set[string]
	Topic0In  mapset.Set[string]
	Topic1In  mapset.Set[string]
	Topic2In  mapset.Set[string]
	Topic3In  mapset.Set[string]
}

func (r *GetLogsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("address__in", r.AddressIn)
	p.setFilter("topic0__in", r.Topic0In)
	p.setFilter("topic1__in", r.Topic1In)
	p.setFilter("topic2__in", r.Topic2In)
	p.setFilter("topic3__in", r.Topic3In)
	return p
}
