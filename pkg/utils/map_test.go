package utils_test

import (
	"testing"

	"github.com/drpcorg/chainquery/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestCMapStoreLoadDelete(t *testing.T) {
	mp := utils.NewCMap[uint64, string]()
	value := "op"

	mp.Store(1, &value)

	loaded, ok := mp.Load(1)
	assert.True(t, ok)
	assert.Equal(t, &value, loaded)

	mp.Delete(1)

	_, ok = mp.Load(1)
	assert.False(t, ok)
}

func TestCMapLoadAndDelete(t *testing.T) {
	mp := utils.NewCMap[uint64, string]()
	value := "op"

	mp.Store(5, &value)

	loaded, ok := mp.LoadAndDelete(5)
	assert.True(t, ok)
	assert.Equal(t, &value, loaded)

	_, ok = mp.LoadAndDelete(5)
	assert.False(t, ok)
}

func TestCMapRange(t *testing.T) {
	mp := utils.NewCMap[uint64, string]()
	first, second := "first", "second"
	mp.Store(1, &first)
	mp.Store(2, &second)

	seen := map[uint64]string{}
	mp.Range(func(key uint64, val *string) bool {
		seen[key] = *val
		return true
	})

	assert.Equal(t, map[uint64]string{1: "first", 2: "second"}, seen)
}
