package graph

import (
	"math"
	"testing"
)

func TestNewClip(t *testing.T) {
	c, err := NewClip(100, 44100, 2)
	if err != nil {
		t.Fatalf("NewClip failed: %v", err)
	}
	if c.Frames() != 100 || len(c.Samples) != 200 {
		t.Fatalf("unexpected allocation: %d frames, %d samples", c.Frames(), len(c.Samples))
	}
	if math.Abs(c.Duration()-100.0/44100) > 1e-12 {
		t.Fatalf("unexpected duration: %g", c.Duration())
	}

	if _, err := NewClip(-1, 44100, 1); err == nil {
		t.Fatal("expected error for negative frames")
	}
	if _, err := NewClip(10, 0, 1); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := NewClip(10, 44100, 0); err == nil {
		t.Fatal("expected error for zero channels")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := &Clip{Samples: []float64{1, 2}, SampleRate: 8000, Channels: 1}
	d := c.Clone()
	d.Samples[0] = 9
	if c.Samples[0] != 1 {
		t.Fatal("clone shares sample storage with the original")
	}
}

func TestMonoAveragesChannels(t *testing.T) {
	c := &Clip{Samples: []float64{0.2, 0.6, -1, 1}, SampleRate: 8000, Channels: 2}
	m := c.Mono()
	if len(m) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(m))
	}
	if math.Abs(m[0]-0.4) > 1e-12 || m[1] != 0 {
		t.Fatalf("unexpected mono mix: %v", m)
	}

	mono := &Clip{Samples: []float64{0.5}, SampleRate: 8000, Channels: 1}
	if &mono.Mono()[0] != &mono.Samples[0] {
		t.Fatal("mono clip must return its own samples")
	}
}

func TestChannelExtraction(t *testing.T) {
	c := &Clip{Samples: []float64{1, 2, 3, 4}, SampleRate: 8000, Channels: 2}
	right, err := c.Channel(1)
	if err != nil {
		t.Fatalf("Channel failed: %v", err)
	}
	if right[0] != 2 || right[1] != 4 {
		t.Fatalf("unexpected channel data: %v", right)
	}
	if _, err := c.Channel(2); err == nil {
		t.Fatal("expected error for channel out of range")
	}
}
