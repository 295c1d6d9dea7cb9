package vectrix_test

import (
	"math/rand"
	"testing"

	"github.com/rossmacarthur/vectrix"
)

// randomMatrix builds an n×n matrix of deterministic pseudo-random values.
func randomMatrix(n int, seed int64) *vectrix.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := vectrix.MustNew[float64](n, n)
	data := m.AsSlice()
	for k := range data {
		data[k] = rng.Float64()
	}
	return m
}

// BenchmarkMul measures the 64×64 matrix product through the row·column
// dot primitive.
func BenchmarkMul(b *testing.B) {
	x := randomMatrix(64, 1)
	y := randomMatrix(64, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vectrix.Mul(x, y)
	}
}

// BenchmarkAdd measures an elementwise sum over the checked index tier.
func BenchmarkAdd(b *testing.B) {
	x := randomMatrix(64, 1)
	y := randomMatrix(64, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vectrix.Add(x, y)
	}
}

// BenchmarkCollect measures filling a 64×64 shape from a generator.
func BenchmarkCollect(b *testing.B) {
	seq := func(yield func(float64) bool) {
		for v := 0.0; ; v++ {
			if !yield(v) {
				return
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vectrix.CollectUnchecked(64, 64, seq)
	}
}

// BenchmarkRowSum measures traversal of a strided row view.
func BenchmarkRowSum(b *testing.B) {
	m := randomMatrix(256, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0.0
		for v := range m.Row(17).Values() {
			sum += v
		}
		_ = sum
	}
}
