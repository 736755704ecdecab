package chains_test

import (
	"testing"

	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/stretchr/testify/assert"
)

func TestFamiliesAreDisjoint(t *testing.T) {
	evm := chains.EvmChains()
	btc := chains.BtcChains()
	move := chains.MoveChains()
	fuel := chains.FuelChains()

	assert.True(t, evm.Intersect(btc).IsEmpty())
	assert.True(t, evm.Intersect(move).IsEmpty())
	assert.True(t, evm.Intersect(fuel).IsEmpty())
	assert.True(t, btc.Intersect(move).IsEmpty())
	assert.True(t, btc.Intersect(fuel).IsEmpty())
	assert.True(t, move.Intersect(fuel).IsEmpty())
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		chain  chains.ChainId
		family chains.Family
	}{
		{chains.ETH, chains.EvmFamily},
		{chains.ARBITRUM, chains.EvmFamily},
		{chains.BASE, chains.EvmFamily},
		{chains.BTC, chains.UtxoFamily},
		{chains.MOVEMENT, chains.MoveFamily},
		{chains.FUEL, chains.FuelFamily},
		{chains.FUELTESTNET, chains.FuelFamily},
	}

	for _, test := range tests {
		t.Run(test.chain.String(), func(te *testing.T) {
			family, ok := chains.FamilyOf(test.chain)

			assert.True(te, ok)
			assert.Equal(te, test.family, family)
		})
	}
}

func TestUnknownChain(t *testing.T) {
	_, ok := chains.FamilyOf("NOT_A_CHAIN")

	assert.False(t, ok)
	assert.False(t, chains.IsSupported("NOT_A_CHAIN"))
}

func TestDefaultChains(t *testing.T) {
	assert.Equal(t, []chains.ChainId{chains.ETH}, chains.DefaultEvmChains().ToSlice())
	assert.Equal(t, []chains.ChainId{chains.BTC}, chains.DefaultBtcChains().ToSlice())
	assert.Equal(t, []chains.ChainId{chains.MOVEMENT}, chains.DefaultMoveChains().ToSlice())
	assert.Equal(t, []chains.ChainId{chains.FUEL}, chains.DefaultFuelChains().ToSlice())
}

func TestDefaultsBelongToFamily(t *testing.T) {
	assert.True(t, chains.DefaultEvmChains().IsSubset(chains.EvmChains()))
	assert.True(t, chains.DefaultFuelChains().IsSubset(chains.FuelChains()))
	assert.True(t, chains.DefaultMoveChains().IsSubset(chains.MoveChains()))
	assert.True(t, chains.DefaultBtcChains().IsSubset(chains.BtcChains()))
}
