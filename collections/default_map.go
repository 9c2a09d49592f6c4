package collections

import (
	"github.com/tdhuan/mapx/utils/lazy"
	"github.com/tdhuan/mapx/utils/optional"
	"github.com/tdhuan/mapx/utils/tuple"
)

// defaultingMap decorates an inner map: lookup misses synthesize a value
// from fn instead of reporting absence. Synthesized values are not
// stored. Everything except lookup delegates to the inner map.
type defaultingMap[K comparable, V any] struct {
	inner Map[K, V]
	fn    func(K) V
}

// WithDefault returns an empty hash map wrapped with the given default
// function.
func WithDefault[K comparable, V any](fn func(K) V) Map[K, V] {
	return NewHashMap[K, V]().Defaulting(fn)
}

func (m *defaultingMap[K, V]) Lookup(k K) optional.Option[V] {
	if o := m.inner.Lookup(k); o.IsSome() {
		return o
	}
	return optional.Some(m.fn(k))
}

// Get never reports ErrKeyNotFound: a miss resolves through fn. It only
// fails if fn itself fails.
func (m *defaultingMap[K, V]) Get(k K) (V, error) {
	v, _ := m.Lookup(k).Unwrap()
	return v, nil
}

func (m *defaultingMap[K, V]) Set(k K, v V) {
	m.inner.Set(k, v)
}

func (m *defaultingMap[K, V]) Put(p tuple.Pair[K, V]) {
	m.inner.Put(p)
}

// Contains reflects actual stored keys only; a value produced by fn
// does not count until it is written explicitly.
func (m *defaultingMap[K, V]) Contains(k K) bool {
	return m.inner.Contains(k)
}

func (m *defaultingMap[K, V]) Delete(k K) error {
	return m.inner.Delete(k)
}

func (m *defaultingMap[K, V]) Size() int {
	return m.inner.Size()
}

func (m *defaultingMap[K, V]) GetOrElse(k K, orElse lazy.Value[V]) V {
	return m.inner.GetOrElse(k, orElse)
}

func (m *defaultingMap[K, V]) GetOrElseUpdate(k K, orElse lazy.Value[V]) V {
	return m.inner.GetOrElseUpdate(k, orElse)
}

func (m *defaultingMap[K, V]) Keys() []K {
	return m.inner.Keys()
}

func (m *defaultingMap[K, V]) Values() []V {
	return m.inner.Values()
}

func (m *defaultingMap[K, V]) Entries() []tuple.Pair[K, V] {
	return m.inner.Entries()
}

func (m *defaultingMap[K, V]) SameContent(other Map[K, V]) bool {
	return m.inner.SameContent(other)
}

func (m *defaultingMap[K, V]) ToMap() map[K]V {
	return m.inner.ToMap()
}

// Defaulting stacks another layer: fn2 fires only when this map's
// lookup reports absent, so the layer closest to the storage wins.
func (m *defaultingMap[K, V]) Defaulting(fn2 func(K) V) Map[K, V] {
	return &defaultingMap[K, V]{
		inner: m,
		fn:    fn2,
	}
}
