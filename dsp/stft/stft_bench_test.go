package stft

import (
	"math"
	"strconv"
	"testing"
)

func makeBenchSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 44100)
	}

	return out
}

func BenchmarkTransform(b *testing.B) {
	a, err := New(1024, 256)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	sizes := []int{4096, 16384, 65536}
	for _, n := range sizes {
		signal := makeBenchSignal(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := a.Transform(signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMagnitude(b *testing.B) {
	a, err := New(2048, 512)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	signal := makeBenchSignal(44100)
	b.ReportAllocs()
	b.SetBytes(int64(len(signal) * 8))

	for range b.N {
		if _, err := a.Magnitude(signal); err != nil {
			b.Fatal(err)
		}
	}
}
