package collections

import (
	"reflect"

	"github.com/tdhuan/mapx/utils/lazy"
	"github.com/tdhuan/mapx/utils/optional"
	"github.com/tdhuan/mapx/utils/tuple"
)

// Map is a mutable association of unique keys to values. Implementations
// are not safe for unsynchronized concurrent use.
type Map[K comparable, V any] interface {
	// Lookup reports the stored value as an Option and never fails.
	Lookup(k K) optional.Option[V]
	// Get returns the stored value or ErrKeyNotFound.
	Get(k K) (V, error)
	// Set inserts or overwrites the value for k.
	Set(k K, v V)
	// Put is Set with a pre-built pair.
	Put(p tuple.Pair[K, V])
	Contains(k K) bool
	Delete(k K) error
	Size() int
	// GetOrElse returns the stored value, or evaluates orElse without
	// mutating the map.
	GetOrElse(k K, orElse lazy.Value[V]) V
	// GetOrElseUpdate returns the stored value, or evaluates orElse
	// exactly once, stores the result under k and returns it.
	GetOrElseUpdate(k K, orElse lazy.Value[V]) V
	// Keys, Values and Entries snapshot the content in the backing
	// store's iteration order.
	Keys() []K
	Values() []V
	Entries() []tuple.Pair[K, V]
	// SameContent reports whether both maps store equal key-value
	// pairs. Default functions never participate in the comparison.
	SameContent(other Map[K, V]) bool
	// ToMap copies the content into a native map.
	ToMap() map[K]V
	// Defaulting wraps the map so that lookup misses synthesize a value
	// from fn. The wrapper adopts the receiver; the original handle
	// must not be mutated directly afterwards.
	Defaulting(fn func(K) V) Map[K, V]
}

// FromMap builds a hash map holding a copy of every entry of native.
func FromMap[K comparable, V any](native map[K]V) Map[K, V] {
	m := &hashMap[K, V]{
		entries: make(map[K]V, len(native)),
	}
	for k, v := range native {
		m.entries[k] = v
	}
	return m
}

// MapKeys builds a plain hash map by applying f to every key, values
// unchanged. If f produces duplicate keys, the entry visited last wins;
// the visiting order is that of m's backing store.
func MapKeys[K comparable, K2 comparable, V any](m Map[K, V], f func(K) K2) Map[K2, V] {
	out := NewHashMap[K2, V]()
	for _, p := range m.Entries() {
		out.Set(f(p.First), p.Second)
	}
	return out
}

// MapValues builds a plain hash map by applying f to every value, keys
// unchanged.
func MapValues[K comparable, V any, V2 any](m Map[K, V], f func(V) V2) Map[K, V2] {
	out := NewHashMap[K, V2]()
	for _, p := range m.Entries() {
		out.Set(p.First, f(p.Second))
	}
	return out
}

// stored strips defaulting layers so comparisons see actual entries.
func stored[K comparable, V any](m Map[K, V]) Map[K, V] {
	for {
		d, ok := m.(*defaultingMap[K, V])
		if !ok {
			return m
		}
		m = d.inner
	}
}

func contentEqual[K comparable, V any](entries map[K]V, other Map[K, V]) bool {
	if other == nil {
		return false
	}
	other = stored(other)
	if len(entries) != other.Size() {
		return false
	}
	for k, v := range entries {
		ov, err := other.Get(k)
		if err != nil {
			return false
		}
		if !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}
