package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetBlocksRequest struct {
	Chains    mapset.Set[chains.ChainId]
	FromBlock types.Bound
	ToBlock   types.Bound
}

func (r *GetBlocksRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	return p
}
