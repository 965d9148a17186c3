package btree

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	for _, order := range []int{3, 8, 32, 128} {
		b.Run(fmt.Sprintf("order_%d", order), func(b *testing.B) {
			keys := rand.New(rand.NewPCG(1, 2)).Perm(b.N)
			tree, _ := New[int](order)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Insert(keys[i])
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	const n = 100_000
	for _, order := range []int{3, 8, 32, 128} {
		b.Run(fmt.Sprintf("order_%d", order), func(b *testing.B) {
			tree, _ := New[int](order)
			for _, k := range rand.New(rand.NewPCG(1, 2)).Perm(n) {
				tree.Insert(k)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Find(i % n)
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for _, order := range []int{3, 8, 32, 128} {
		b.Run(fmt.Sprintf("order_%d", order), func(b *testing.B) {
			keys := rand.New(rand.NewPCG(1, 2)).Perm(b.N)
			tree, _ := New[int](order)
			for _, k := range keys {
				tree.Insert(k)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Delete(keys[i])
			}
		})
	}
}
