package chains

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ChainId identifies a supported blockchain network.
// Each chain belongs to exactly one family.
type ChainId string

const (
	ETH      ChainId = "ETH"
	ARBITRUM ChainId = "ARBITRUM"
	BASE     ChainId = "BASE"
	OPT      ChainId = "OPT"

	BTC ChainId = "BTC"

	MOVEMENT ChainId = "MOVEMENT"

	FUEL        ChainId = "FUEL"
	FUELTESTNET ChainId = "FUELTESTNET"
)

func (c ChainId) String() string {
	return string(c)
}

// Family partitions supported chains by execution-model kind.
type Family string

const (
	EvmFamily  Family = "evm"
	UtxoFamily Family = "utxo"
	MoveFamily Family = "move"
	FuelFamily Family = "fuel"
)

var (
	evmChains  = mapset.NewSet(ETH, ARBITRUM, BASE, OPT)
	btcChains  = mapset.NewSet(BTC)
	moveChains = mapset.NewSet(MOVEMENT)
	fuelChains = mapset.NewSet(FUEL, FUELTESTNET)
)

func EvmChains() mapset.Set[ChainId] {
	return evmChains.Clone()
}

func BtcChains() mapset.Set[ChainId] {
	return btcChains.Clone()
}

func MoveChains() mapset.Set[ChainId] {
	return moveChains.Clone()
}

func FuelChains() mapset.Set[ChainId] {
	return fuelChains.Clone()
}

// Canonical chain sets used when a request carries no explicit chains.

func DefaultEvmChains() mapset.Set[ChainId] {
	return mapset.NewSet(ETH)
}

func DefaultBtcChains() mapset.Set[ChainId] {
	return mapset.NewSet(BTC)
}

func DefaultMoveChains() mapset.Set[ChainId] {
	return mapset.NewSet(MOVEMENT)
}

func DefaultFuelChains() mapset.Set[ChainId] {
	return mapset.NewSet(FUEL)
}

func FamilyOf(chain ChainId) (Family, bool) {
	switch {
	case evmChains.Contains(chain):
		return EvmFamily, true
	case btcChains.Contains(chain):
		return UtxoFamily, true
	case moveChains.Contains(chain):
		return MoveFamily, true
	case fuelChains.Contains(chain):
		return FuelFamily, true
	}
	return "", false
}

func IsSupported(chain ChainId) bool {
	_, ok := FamilyOf(chain)
	return ok
}
