package collections

import (
	"github.com/tdhuan/mapx/utils/lazy"
	"github.com/tdhuan/mapx/utils/optional"
	"github.com/tdhuan/mapx/utils/tuple"
)

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

// NewHashMap returns an empty map backed by a native hash map.
func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *hashMap[K, V]) Lookup(k K) optional.Option[V] {
	if v, ok := m.entries[k]; ok {
		return optional.Some(v)
	}
	return optional.None[V]()
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrKeyNotFound
	}
	return m.entries[k], nil
}

func (m *hashMap[K, V]) Set(k K, v V) {
	m.entries[k] = v
}

func (m *hashMap[K, V]) Put(p tuple.Pair[K, V]) {
	m.Set(p.First, p.Second)
}

func (m *hashMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrKeyNotFound
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) GetOrElse(k K, orElse lazy.Value[V]) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return orElse.Eval()
}

func (m *hashMap[K, V]) GetOrElseUpdate(k K, orElse lazy.Value[V]) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	v := orElse.Eval()
	m.entries[k] = v
	return v
}

func (m *hashMap[K, V]) Keys() []K {
	arr := make([]K, 0, len(m.entries))
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *hashMap[K, V]) Values() []V {
	arr := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		arr = append(arr, v)
	}
	return arr
}

func (m *hashMap[K, V]) Entries() []tuple.Pair[K, V] {
	arr := make([]tuple.Pair[K, V], 0, len(m.entries))
	for k, v := range m.entries {
		arr = append(arr, tuple.New(k, v))
	}
	return arr
}

func (m *hashMap[K, V]) SameContent(other Map[K, V]) bool {
	return contentEqual(m.entries, other)
}

func (m *hashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

func (m *hashMap[K, V]) Defaulting(fn func(K) V) Map[K, V] {
	return &defaultingMap[K, V]{
		inner: m,
		fn:    fn,
	}
}
