package requests

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
)

type GetMiraPoolsRequest struct {
	Chains          mapset.Set[chains.ChainId]
	FromBlock       types.Bound
	ToBlock         types.Bound
	PoolAddressIn   mapset.Set[string]
	Asset0AddressIn mapset.Set[string]
	Asset1AddressIn mapset.Set[string]
	AssetsIn        mapset.Set[string]
}

func (r *GetMiraPoolsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	p.setFilter("asset0_address__in", r.Asset0AddressIn)
	p.setFilter("asset1_address__in", r.Asset1AddressIn)
	p.setFilter("assets__in", r.AssetsIn)
	return p
}

type GetMiraLiquidityRequest struct {
	Chains          mapset.Set[chains.ChainId]
	FromBlock       types.Bound
	ToBlock         types.Bound
	PoolAddressIn   mapset.Set[string]
	Asset0AddressIn mapset.Set[string]
	Asset1AddressIn mapset.Set[string]
	AssetsIn        mapset.Set[string]
}

func (r *GetMiraLiquidityRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	p.setFilter("asset0_address__in", r.Asset0AddressIn)
	p.setFilter("asset1_address__in", r.Asset1AddressIn)
	p.setFilter("assets__in", r.AssetsIn)
	return p
}

type GetMiraSwapsRequest struct {
	Chains          mapset.Set[chains.ChainId]
	FromBlock       types.Bound
	ToBlock         types.Bound
	PoolAddressIn   mapset.Set[string]
	Asset0AddressIn mapset.Set[string]
	Asset1AddressIn mapset.Set[string]
	AssetsIn        mapset.Set[string]
}

func (r *GetMiraSwapsRequest) Params() Params {
	p := Params{}
	p.setChains(r.Chains, chains.DefaultFuelChains)
	p.setBound("from_block", r.FromBlock)
	p.setBound("to_block", r.ToBlock)
	p.setFilter("pool_address__in", r.PoolAddressIn)
	p.setFilter("asset0_address__in", r.Asset0AddressIn)
	p.setFilter("asset1_address__in", r.Asset1AddressIn)
	p.setFilter("assets__in", r.AssetsIn)
	return p
}
