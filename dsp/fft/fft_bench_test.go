package fft

import (
	"math/rand"
	"testing"
)

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{256, 1024, 4096, 16384} {
		rng := rand.New(rand.NewSource(1))
		src := make([]float64, n)
		for i := range src {
			src[i] = rng.Float64()*2 - 1
		}

		re := make([]float64, n)
		im := make([]float64, n)

		b.Run(sizeName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				copy(re, src)
				for j := range im {
					im[j] = 0
				}
				if err := Transform(re, im); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func sizeName(n int) string {
	switch n {
	case 256:
		return "256"
	case 1024:
		return "1k"
	case 4096:
		return "4k"
	default:
		return "16k"
	}
}
