package resample

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audionodes/graph"
	"github.com/cwbudde/algo-audionodes/internal/testutil"
)

func TestResampleLengthScalesWithRatio(t *testing.T) {
	cases := []struct {
		inLen, inRate, outRate int
	}{
		{44100, 44100, 22050},
		{22050, 22050, 44100},
		{48000, 48000, 44100},
		{1000, 8000, 16000},
	}
	for _, tc := range cases {
		in := testutil.Sine(440, float64(tc.inRate), 0.5, tc.inLen)
		out, err := Resample(in, tc.inRate, tc.outRate)
		if err != nil {
			t.Fatalf("Resample(%d -> %d) failed: %v", tc.inRate, tc.outRate, err)
		}
		want := int(math.Round(float64(tc.inLen) * float64(tc.outRate) / float64(tc.inRate)))
		if len(out) != want {
			t.Fatalf("%d -> %d: expected %d samples, got %d", tc.inRate, tc.outRate, want, len(out))
		}
		testutil.RequireFinite(t, out)
	}
}

func TestResampleSameRateCopies(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	out, err := Resample(in, 44100, 44100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d samples, got %d", len(in), len(out))
	}
	out[0] = 9
	if in[0] != 0.1 {
		t.Fatal("output aliases the input slice")
	}
}

func TestResamplePreservesTone(t *testing.T) {
	const inRate, outRate = 44100, 22050
	in := testutil.Sine(440, inRate, 0.5, inRate)
	out, err := Resample(in, inRate, outRate)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	want := testutil.Sine(440, outRate, 0.5, len(out))
	// Compare away from the edges where the kernel is truncated.
	lo, hi := 200, len(out)-200
	for i := lo; i < hi; i++ {
		if math.Abs(out[i]-want[i]) > 0.05 {
			t.Fatalf("sample %d deviates from the ideal tone: got %g, want %g", i, out[i], want[i])
		}
	}
}

func TestResampleValidation(t *testing.T) {
	if _, err := Resample([]float64{1}, 0, 44100); err == nil {
		t.Fatal("expected error for zero input rate")
	}
	if _, err := Resample([]float64{1}, 44100, -1); err == nil {
		t.Fatal("expected error for negative output rate")
	}
	out, err := Resample(nil, 44100, 22050)
	if err != nil {
		t.Fatalf("Resample of empty input failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d samples", len(out))
	}
}

func TestResampleClip(t *testing.T) {
	frames := 4410
	samples := make([]float64, frames*2)
	mono := testutil.Sine(220, 44100, 0.4, frames)
	for f, v := range mono {
		samples[2*f] = v
		samples[2*f+1] = -v
	}
	c := &graph.Clip{Samples: samples, SampleRate: 44100, Channels: 2}

	out, err := ResampleClip(c, 22050)
	if err != nil {
		t.Fatalf("ResampleClip failed: %v", err)
	}
	if out.SampleRate != 22050 || out.Channels != 2 {
		t.Fatalf("unexpected output format: rate=%d channels=%d", out.SampleRate, out.Channels)
	}
	if out.Frames() != frames/2 {
		t.Fatalf("expected %d frames, got %d", frames/2, out.Frames())
	}

	same, err := ResampleClip(c, 44100)
	if err != nil {
		t.Fatalf("ResampleClip at same rate failed: %v", err)
	}
	if same.Frames() != frames {
		t.Fatalf("same-rate clip changed length: %d", same.Frames())
	}
}
