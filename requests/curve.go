package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetCrvTokenRequest struct {
	Chains         mapset.Set[chains.ChainId]
	FromBlock      types.Bound
	ToBlock        types.Bound
	TokenAddressIn mapset.Set[string]
}

func (r *GetCrvTokenRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("token_address__in", r.TokenAddressIn)
	return p
}

type GetCrvPoolRequest struct {
	Chains        mapset.Set[chains.ChainId]
	FromBlock     types.Bound
	ToBlock       types.Bound
	PoolAddressIn mapset.Set[string]
}

func (r *GetCrvPoolRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	return p
}

type GetCrvPriceRequest struct {
	Chains         mapset.Set[chains.ChainId]
	FromBlock      types.Bound
	ToBlock        types.Bound
	PoolAddressIn  mapset.Set[string]
	TokenAddressIn mapset.Set[string]
}

func (r *GetCrvPriceRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultEvmChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	p.setFilter("token_address__in", r.TokenAddressIn)
	return p
}
