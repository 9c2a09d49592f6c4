// Package lazy wraps either a plain value or a zero-argument function
// behind a single evaluate-on-demand type.
package lazy

// Value holds a constant or a deferred computation. The zero value
// evaluates to the zero value of T.
type Value[T any] struct {
	value T
	fn    func() T
}

// Of returns a Value that always evaluates to v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v}
}

// Func returns a Value that evaluates fn on demand. fn runs once per
// Eval call; results are not memoized.
func Func[T any](fn func() T) Value[T] {
	return Value[T]{fn: fn}
}

func (l Value[T]) Eval() T {
	if l.fn != nil {
		return l.fn()
	}
	return l.value
}
