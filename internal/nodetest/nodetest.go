// Package nodetest provides shared fixtures for node tests: an in-memory
// engine context and deterministic clip builders.
package nodetest

import (
	"context"
	"math"
	"testing"

	"github.com/cwbudde/algo-audionodes/asset"
	"github.com/cwbudde/algo-audionodes/graph"
)

// Context returns an engine context backed by a fresh in-memory store.
func Context() *asset.Context {
	return asset.NewContext(asset.NewStore())
}

// ToneClip returns a mono sine clip.
func ToneClip(freq, duration float64, sampleRate int) *graph.Clip {
	n := int(duration * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.8 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return &graph.Clip{Samples: samples, SampleRate: sampleRate, Channels: 1}
}

// SilentClip returns a mono all-zero clip.
func SilentClip(duration float64, sampleRate int) *graph.Clip {
	n := int(duration * float64(sampleRate))
	return &graph.Clip{Samples: make([]float64, n), SampleRate: sampleRate, Channels: 1}
}

// ClickClip returns a mostly silent mono clip with short bursts at the given
// times, useful for onset detection tests.
func ClickClip(duration float64, sampleRate int, clickTimes ...float64) *graph.Clip {
	c := SilentClip(duration, sampleRate)
	burst := sampleRate / 100
	for _, t := range clickTimes {
		start := int(t * float64(sampleRate))
		for i := 0; i < burst && start+i < len(c.Samples); i++ {
			c.Samples[start+i] = 0.9 * math.Sin(2*math.Pi*3000*float64(i)/float64(sampleRate))
		}
	}
	return c
}

// EncodeRef stores clip through ec and returns its reference, failing the
// test on error.
func EncodeRef(t *testing.T, ec *asset.Context, clip *graph.Clip) graph.AudioRef {
	t.Helper()
	ref, err := ec.EncodeAudio(context.Background(), clip)
	if err != nil {
		t.Fatalf("encoding fixture clip: %v", err)
	}
	return ref
}

// DecodeRef resolves ref through ec, failing the test on error.
func DecodeRef(t *testing.T, ec *asset.Context, ref graph.AudioRef) *graph.Clip {
	t.Helper()
	clip, err := ec.DecodeAudio(context.Background(), ref)
	if err != nil {
		t.Fatalf("decoding result clip: %v", err)
	}
	return clip
}
