package stft

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audionodes/dsp/window"
	"github.com/cwbudde/algo-audionodes/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name    string
		fftSize int
		hop     int
		opts    []Option
	}{
		{"non power of two", 1000, 256, nil},
		{"zero fft size", 0, 256, nil},
		{"zero hop", 1024, 0, nil},
		{"window longer than fft", 512, 128, []Option{WithWinLength(1024)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.fftSize, tc.hop, tc.opts...); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestTransformShape(t *testing.T) {
	a, err := New(1024, 256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples := testutil.Sine(440, 44100, 0.8, 44100)
	spec, err := a.Transform(samples)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(spec) != a.NumFrames(len(samples)) {
		t.Fatalf("frames = %d, want %d", len(spec), a.NumFrames(len(samples)))
	}
	if len(spec[0]) != a.Bins() {
		t.Fatalf("bins = %d, want %d", len(spec[0]), a.Bins())
	}
	if a.Bins() != 513 {
		t.Fatalf("Bins() = %d, want 513", a.Bins())
	}
}

func TestMagnitudePeaksAtToneBin(t *testing.T) {
	const (
		sampleRate = 44100
		freq       = 1000.0
		fftSize    = 4096
	)
	a, err := New(fftSize, 1024)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mag, err := a.Magnitude(testutil.Sine(freq, sampleRate, 0.8, sampleRate))
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	// Use an interior frame; edge frames see the reflection padding.
	frame := mag[len(mag)/2]
	peak := 0
	for k, v := range frame {
		if v > frame[peak] {
			peak = k
		}
	}
	wantBinF := freq/float64(sampleRate)*fftSize + 0.5
	wantBin := int(wantBinF)
	if peak < wantBin-1 || peak > wantBin+1 {
		t.Fatalf("peak bin = %d, want about %d", peak, wantBin)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	a, err := New(1024, 256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples := testutil.Sine(440, 44100, 0.5, 8192)
	spec, err := a.Transform(samples)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	got, err := a.Inverse(spec, len(samples))
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("length = %d, want %d", len(got), len(samples))
	}
	// Interior must reconstruct closely; edges lose energy to padding.
	testutil.RequireSliceNearlyEqual(t, got[1024:7168], samples[1024:7168], 1e-6)
}

func TestInverseNonCentered(t *testing.T) {
	a, err := New(512, 128, WithCenter(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples := testutil.Noise(7, 0.5, 4096)
	spec, err := a.Transform(samples)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	got, err := a.Inverse(spec, len(samples))
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got[512:3584], samples[512:3584], 1e-6)
}

func TestGriffinLimRecoversTone(t *testing.T) {
	a, err := New(1024, 256, WithWindow(window.TypeHann))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples := testutil.Sine(440, 22050, 0.5, 8192)
	mag, err := a.Magnitude(samples)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}
	got, err := a.GriffinLim(mag, 16, len(samples))
	if err != nil {
		t.Fatalf("GriffinLim: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("length = %d, want %d", len(got), len(samples))
	}
	testutil.RequireFinite(t, got)

	// The reconstruction magnitude should match the target closely even if
	// the phase differs.
	gotMag, err := a.Magnitude(got)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}
	var num, den float64
	for tIdx := 2; tIdx < len(mag)-2; tIdx++ {
		for k := range mag[tIdx] {
			d := gotMag[tIdx][k] - mag[tIdx][k]
			num += d * d
			den += mag[tIdx][k] * mag[tIdx][k]
		}
	}
	if den == 0 {
		t.Fatalf("degenerate target spectrogram")
	}
	if rel := math.Sqrt(num / den); rel > 0.1 {
		t.Fatalf("relative magnitude error = %v, want <= 0.1", rel)
	}
}

func TestGriffinLimValidation(t *testing.T) {
	a, err := New(512, 128)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.GriffinLim(nil, 8, 0); err == nil {
		t.Fatalf("expected error for empty input")
	}
	mag := [][]float64{make([]float64, a.Bins())}
	if _, err := a.GriffinLim(mag, 0, 0); err == nil {
		t.Fatalf("expected error for zero iterations")
	}
}
