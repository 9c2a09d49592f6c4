package tuple

import "fmt"

// Pair is an ordered two-element tuple.
type Pair[A any, B any] struct {
	First  A
	Second B
}

func New[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{
		First:  first,
		Second: second,
	}
}

func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{
		First:  p.Second,
		Second: p.First,
	}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
