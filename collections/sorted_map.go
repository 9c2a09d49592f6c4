package collections

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/tdhuan/mapx/utils/lazy"
	"github.com/tdhuan/mapx/utils/optional"
	"github.com/tdhuan/mapx/utils/tuple"
)

// sortedMap keeps a sorted key index next to the entries so Keys,
// Values and Entries iterate in ascending key order. Useful when a
// deterministic MapKeys collapse or a stable report is needed.
type sortedMap[K constraints.Ordered, V any] struct {
	entries map[K]V
	keys    []K
}

// NewSortedMap returns an empty map with ascending-key iteration order.
func NewSortedMap[K constraints.Ordered, V any]() Map[K, V] {
	return &sortedMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *sortedMap[K, V]) Lookup(k K) optional.Option[V] {
	if v, ok := m.entries[k]; ok {
		return optional.Some(v)
	}
	return optional.None[V]()
}

func (m *sortedMap[K, V]) Get(k K) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrKeyNotFound
	}
	return m.entries[k], nil
}

func (m *sortedMap[K, V]) Set(k K, v V) {
	if _, ok := m.entries[k]; !ok {
		i, _ := slices.BinarySearch(m.keys, k)
		m.keys = slices.Insert(m.keys, i, k)
	}
	m.entries[k] = v
}

func (m *sortedMap[K, V]) Put(p tuple.Pair[K, V]) {
	m.Set(p.First, p.Second)
}

func (m *sortedMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *sortedMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrKeyNotFound
	}
	delete(m.entries, k)
	i, _ := slices.BinarySearch(m.keys, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	return nil
}

func (m *sortedMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *sortedMap[K, V]) GetOrElse(k K, orElse lazy.Value[V]) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return orElse.Eval()
}

func (m *sortedMap[K, V]) GetOrElseUpdate(k K, orElse lazy.Value[V]) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	v := orElse.Eval()
	m.Set(k, v)
	return v
}

func (m *sortedMap[K, V]) Keys() []K {
	arr := make([]K, len(m.keys))
	copy(arr, m.keys)
	return arr
}

func (m *sortedMap[K, V]) Values() []V {
	arr := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		arr = append(arr, m.entries[k])
	}
	return arr
}

func (m *sortedMap[K, V]) Entries() []tuple.Pair[K, V] {
	arr := make([]tuple.Pair[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		arr = append(arr, tuple.New(k, m.entries[k]))
	}
	return arr
}

func (m *sortedMap[K, V]) SameContent(other Map[K, V]) bool {
	return contentEqual(m.entries, other)
}

func (m *sortedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

func (m *sortedMap[K, V]) Defaulting(fn func(K) V) Map[K, V] {
	return &defaultingMap[K, V]{
		inner: m,
		fn:    fn,
	}
}
