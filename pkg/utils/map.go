package utils

import (
	"sync"
)

// CMap is a typed wrapper over sync.Map.
type CMap[K any, V any] struct {
	mp sync.Map
}

func NewCMap[K any, V any]() *CMap[K, V] {
	return &CMap[K, V]{}
}

func (mp *CMap[K, V]) Load(key K) (*V, bool) {
	res, loaded := mp.mp.Load(key)
	if !loaded {
		return nil, false
	}
	v := res.(*V)
	return v, true
}

func (mp *CMap[K, V]) LoadAndDelete(key K) (*V, bool) {
	v, loaded := mp.mp.LoadAndDelete(key)
	if !loaded {
		return nil, false
	}
	return v.(*V), loaded
}

func (mp *CMap[K, V]) Range(f func(key K, val *V) bool) {
	mp.mp.Range(func(k, v any) bool {
		return f(k.(K), v.(*V))
	})
}

func (mp *CMap[K, V]) Store(key K, val *V) {
	mp.mp.Store(key, val)
}

func (mp *CMap[K, V]) Delete(key K) {
	mp.mp.Delete(key)
}
