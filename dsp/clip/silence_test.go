package clip

import (
	"testing"

	"github.com/cwbudde/algo-audionodes/graph"
)

// speechLike builds 500 ms of signal, 500 ms of silence, 500 ms of signal
// at 1 kHz sample rate.
func speechLike() *graph.Clip {
	s := make([]float64, 1500)
	for i := 0; i < 500; i++ {
		s[i] = 0.5
		s[1000+i] = 0.5
	}
	return monoClip(s, 1000)
}

func TestTrimSilenceRemovesGap(t *testing.T) {
	c := speechLike()
	opts := DefaultSilenceOptions()
	opts.CrossfadeMs = 0
	out, err := TrimSilence(c, opts)
	if err != nil {
		t.Fatalf("TrimSilence failed: %v", err)
	}
	if out.Frames() != 1000 {
		t.Fatalf("expected 1000 frames after full reduction, got %d", out.Frames())
	}
}

func TestTrimSilencePartialReduction(t *testing.T) {
	c := speechLike()
	opts := DefaultSilenceOptions()
	opts.ReductionFactor = 0.5
	opts.CrossfadeMs = 0
	out, err := TrimSilence(c, opts)
	if err != nil {
		t.Fatalf("TrimSilence failed: %v", err)
	}
	if out.Frames() != 1250 {
		t.Fatalf("expected 1250 frames at half reduction, got %d", out.Frames())
	}
}

func TestTrimSilenceShortGapKept(t *testing.T) {
	c := speechLike()
	opts := DefaultSilenceOptions()
	opts.MinSilenceMs = 600
	opts.CrossfadeMs = 0
	out, err := TrimSilence(c, opts)
	if err != nil {
		t.Fatalf("TrimSilence failed: %v", err)
	}
	if out.Frames() != 1500 {
		t.Fatalf("gap shorter than min_silence must survive: got %d frames", out.Frames())
	}
}

func TestTrimSilenceAllSilent(t *testing.T) {
	c := monoClip(make([]float64, 800), 1000)
	out, err := TrimSilence(c, DefaultSilenceOptions())
	if err != nil {
		t.Fatalf("TrimSilence failed: %v", err)
	}
	if out.Frames() != 800 {
		t.Fatalf("fully silent clip must pass through unchanged, got %d frames", out.Frames())
	}
}

func TestTrimSilenceEmptyClip(t *testing.T) {
	c := monoClip(nil, 1000)
	out, err := TrimSilence(c, DefaultSilenceOptions())
	if err != nil {
		t.Fatalf("TrimSilence failed: %v", err)
	}
	if out.Frames() != 0 {
		t.Fatalf("expected empty output, got %d frames", out.Frames())
	}
}

func TestTrimSilenceValidation(t *testing.T) {
	c := speechLike()
	opts := DefaultSilenceOptions()
	opts.ReductionFactor = 1.5
	if _, err := TrimSilence(c, opts); err == nil {
		t.Fatal("expected error for reduction factor above 1")
	}
	opts = DefaultSilenceOptions()
	opts.CrossfadeMs = -5
	if _, err := TrimSilence(c, opts); err == nil {
		t.Fatal("expected error for negative crossfade")
	}
}
