package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	o := Some(5)
	require.True(t, o.IsSome())
	require.False(t, o.IsNone())
	v, ok := o.Unwrap()
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.Equal(t, Some(5), o)
}

func TestNone(t *testing.T) {
	o := None[int]()
	require.False(t, o.IsSome())
	require.True(t, o.IsNone())
	v, ok := o.Unwrap()
	require.False(t, ok)
	require.Equal(t, 0, v)
	require.NotEqual(t, Some(0), o)
}

func TestMustUnwrap(t *testing.T) {
	require.Equal(t, "x", Some("x").MustUnwrap())
	require.Panics(t, func() {
		None[string]().MustUnwrap()
	})
}

func TestOr(t *testing.T) {
	require.Equal(t, 1, Some(1).Or(9))
	require.Equal(t, 9, None[int]().Or(9))
}

func TestGetOrElse(t *testing.T) {
	calls := 0
	fallback := func() int {
		calls++
		return 99
	}
	require.Equal(t, 1, Some(1).GetOrElse(fallback))
	require.Equal(t, 0, calls)
	require.Equal(t, 99, None[int]().GetOrElse(fallback))
	require.Equal(t, 1, calls)
}

func TestOrElse(t *testing.T) {
	alt := func() Option[int] { return Some(7) }
	require.Equal(t, Some(3), Some(3).OrElse(alt))
	require.Equal(t, Some(7), None[int]().OrElse(alt))
	require.Equal(t, None[int](), None[int]().OrElse(None[int]))
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }
	require.Equal(t, Some(6), Map(Some(3), double))
	require.Equal(t, None[int](), Map(None[int](), double))

	length := func(s string) int { return len(s) }
	require.Equal(t, Some(5), Map(Some("hello"), length))
}
