package collections

import (
	"fmt"
	"testing"

	"github.com/tdhuan/mapx/utils/lazy"
	"github.com/tdhuan/mapx/utils/optional"
)

var (
	sinkInt int
	sinkOpt optional.Option[int]
)

func BenchmarkHashMapSet(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			m := NewHashMap[int, int]()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				m.Set(n%size, n)
			}
		})
	}
}

func BenchmarkHashMapLookup(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			m := NewHashMap[int, int]()
			for i := 0; i < size; i++ {
				m.Set(i, i)
			}
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				sinkOpt = m.Lookup(n % (2 * size))
			}
		})
	}
}

func BenchmarkSortedMapSet(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			m := NewSortedMap[int, int]()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				m.Set(n%size, n)
			}
		})
	}
}

func BenchmarkDefaultingLookupMiss(b *testing.B) {
	d := WithDefault(func(k int) int { return k * 2 })
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sinkOpt = d.Lookup(n)
	}
}

func BenchmarkGetOrElseUpdate(b *testing.B) {
	m := NewHashMap[int, int]()
	fallback := lazy.Func(func() int { return 1 })
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sinkInt = m.GetOrElseUpdate(n%1024, fallback)
	}
}
