package evolve_test

import (
	"testing"

	"github.com/katalvlaran/climb/evolve"
)

// benchmarkBits solves a random bit vector of length n once per b.N.
func benchmarkBits(b *testing.B, n int) {
	p := bits(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := evolve.Evolve[[]bool](p, evolve.WithSeed(int64(i+1))); err != nil {
			b.Fatalf("Evolve failed: %v", err)
		}
	}
}

func BenchmarkEvolve_Bits64(b *testing.B)  { benchmarkBits(b, 64) }
func BenchmarkEvolve_Bits512(b *testing.B) { benchmarkBits(b, 512) }
