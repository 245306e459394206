// Package testutil provides deterministic signal builders and tolerance
// assertions shared by the dsp package tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Clicks generates a silent signal with short high-frequency bursts at the
// given sample positions, for onset detection tests.
func Clicks(length, burstLen int, positions ...int) []float64 {
	out := make([]float64, length)
	for _, pos := range positions {
		for i := 0; i < burstLen && pos+i < length; i++ {
			out[pos+i] = 0.9 * math.Sin(2*math.Pi*float64(i)/8)
		}
	}
	return out
}

// RequireSliceNearlyEqual fails t unless got matches want element-wise
// within the absolute tolerance eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("sample %d: got %v, want %v within %v", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if data contains a NaN or an infinity.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is not finite: %v", i, v)
		}
	}
}
