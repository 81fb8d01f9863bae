package atlas

import "maps"

// Table is a read-only keyed lookup.
type Table[K comparable, V any] interface {
	Lookup(key K) (V, bool)
}

// MapTable is a Table over a private copy of a map.
type MapTable[K comparable, V any] struct {
	m map[K]V
}

func NewMapTable[K comparable, V any](m map[K]V) MapTable[K, V] {
	return MapTable[K, V]{m: maps.Clone(m)}
}

func (t MapTable[K, V]) Lookup(key K) (V, bool) {
	v, ok := t.m[key]
	return v, ok
}

func (t MapTable[K, V]) Len() int {
	return len(t.m)
}
