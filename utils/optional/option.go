// Package optional provides a two-case result type for lookups that may
// not produce a value, instead of error returns or sentinel zero values.
package optional

// Option represents an optional value: either Some(value) or None.
// Options over comparable types compare with ==.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the value and a boolean indicating presence,
// mirroring the native "(value, ok)" map access form.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the value or panics if None.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		panic("optional: unwrap of None")
	}
	return o.value
}

// Or returns the contained value or the given constant.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// GetOrElse returns the contained value or computes one from fallback.
func (o Option[T]) GetOrElse(fallback func() T) T {
	if o.ok {
		return o.value
	}
	return fallback()
}

// OrElse returns the option itself if present, otherwise the
// alternative produced by alt.
func (o Option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt()
}

// Map transforms the value if present.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}
