package onset

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audionodes/internal/testutil"
)

func TestNewDetectorValidation(t *testing.T) {
	if _, err := NewDetector(0); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
	if _, err := NewDetector(44100, WithFFTSize(1000)); err == nil {
		t.Fatalf("expected error for non power-of-two fft size")
	}
}

func TestStrengthSilenceIsZero(t *testing.T) {
	d, err := NewDetector(22050)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	env, err := d.Strength(make([]float64, 22050))
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	for i, v := range env {
		if v != 0 {
			t.Fatalf("frame %d = %v, want 0", i, v)
		}
	}
}

func TestStrengthNormalizedToUnitMax(t *testing.T) {
	d, err := NewDetector(22050)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	sig := testutil.Clicks(22050, 256, 5000, 15000)
	env, err := d.Strength(sig)
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	peak := 0.0
	for _, v := range env {
		if v > peak {
			peak = v
		}
	}
	if math.Abs(peak-1) > 1e-12 {
		t.Fatalf("peak = %v, want 1", peak)
	}
}

func TestDetectFindsClicks(t *testing.T) {
	const sampleRate = 22050
	d, err := NewDetector(sampleRate)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	positions := []int{5000, 12000, 18000}
	sig := testutil.Clicks(sampleRate, 256, positions...)
	times, err := d.Detect(sig)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(times) != len(positions) {
		t.Fatalf("detected %d onsets (%v), want %d", len(times), times, len(positions))
	}
	// Each detection must land within two hops of the true position.
	tol := 2 * float64(d.HopLength()) / float64(sampleRate)
	for i, pos := range positions {
		want := float64(pos) / float64(sampleRate)
		if math.Abs(times[i]-want) > tol {
			t.Fatalf("onset %d at %v s, want about %v s", i, times[i], want)
		}
	}
}

func TestDetectSilenceEmpty(t *testing.T) {
	d, err := NewDetector(44100)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	times, err := d.Detect(make([]float64, 44100))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(times) != 0 {
		t.Fatalf("detected %d onsets in silence, want 0", len(times))
	}
}

func TestPickPeaksWaitSuppressesNeighbors(t *testing.T) {
	env := make([]float64, 40)
	env[10] = 1
	env[12] = 0.9
	env[30] = 0.8
	peaks := PickPeaks(env, 3, 3, 10, 10, 0.05, 4)
	if len(peaks) != 2 || peaks[0] != 10 || peaks[1] != 30 {
		t.Fatalf("peaks = %v, want [10 30]", peaks)
	}
}

func TestBoundariesSortedDedupedClipped(t *testing.T) {
	got, err := Boundaries([]float64{0.5, 0.1, 0.5, -0.2, 99}, 1000, 800)
	if err != nil {
		t.Fatalf("Boundaries: %v", err)
	}
	want := []int{0, 100, 500, 800}
	if len(got) != len(want) {
		t.Fatalf("boundaries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("boundaries = %v, want %v", got, want)
		}
	}
}

func TestSegmentsCounts(t *testing.T) {
	// First boundary not at zero: len(boundaries)+1 raw segments.
	segs := Segments([]int{100, 500}, 1000, 0)
	if len(segs) != 3 {
		t.Fatalf("segments = %v, want 3 ranges", segs)
	}
	if segs[0] != [2]int{0, 100} || segs[1] != [2]int{100, 500} || segs[2] != [2]int{500, 1000} {
		t.Fatalf("segments = %v", segs)
	}

	// First boundary at zero: len(boundaries) raw segments.
	segs = Segments([]int{0, 500}, 1000, 0)
	if len(segs) != 2 {
		t.Fatalf("segments = %v, want 2 ranges", segs)
	}
}

func TestSegmentsMinLengthFilter(t *testing.T) {
	segs := Segments([]int{100, 150, 900}, 1000, 100)
	// Ranges: [0,100) [100,150) [150,900) [900,1000): the 50-frame range
	// drops, the rest stay.
	if len(segs) != 3 {
		t.Fatalf("segments = %v, want 3 ranges", segs)
	}
	for _, s := range segs {
		if s[1]-s[0] < 100 {
			t.Fatalf("segment %v shorter than minimum", s)
		}
	}
}

func TestSegmentsEmptyInput(t *testing.T) {
	if segs := Segments(nil, 0, 0); segs != nil {
		t.Fatalf("segments = %v, want nil", segs)
	}
	// No boundaries means no segments, not the whole range.
	if segs := Segments(nil, 500, 0); segs != nil {
		t.Fatalf("segments = %v, want nil", segs)
	}
}
