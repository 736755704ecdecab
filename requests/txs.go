package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetTxsRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	FromAddressIn mapset.Set[string]
	ToAddressIn   mapset.Set[string]
	HashIn        mapset.Set[string]
}

func (r *GetTxsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("from__in", r.FromAddressIn)
	p.setFilter("to__in", r.ToAddressIn)
	p.setFilter("hash__in", r.HashIn)
	return p
}
