package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

// HashSetHashFunc derives the identity of an element. Two elements with
// the same hash are the same element.
type HashSetHashFunc[R comparable, V any] func(V) R

type hashSet[R comparable, V any] struct {
	entries  Map[R, V]
	hashFunc HashSetHashFunc[R, V]
}

// NewHashSet returns a set storing elements in a hash map keyed by f.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  NewHashMap[R, V](),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	return s.entries.Contains(s.hashFunc(v))
}

func (s *hashSet[R, V]) Add(v V) error {
	if s.Contains(v) {
		return ErrElemExisted
	}
	s.entries.Set(s.hashFunc(v), v)
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	if err := s.entries.Delete(s.hashFunc(v)); err != nil {
		return ErrElemNotFound
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return s.entries.Size()
}

func (s *hashSet[R, V]) Entries() []V {
	return s.entries.Values()
}
