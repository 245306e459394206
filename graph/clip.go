package graph

import "fmt"

// Clip is a decoded audio buffer: interleaved float64 samples in [-1, 1]
// together with sample rate and channel count. It is the currency every
// node operates on after the context resolves an [AudioRef].
type Clip struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// NewClip allocates a silent clip with the given frame count.
func NewClip(frames, sampleRate, channels int) (*Clip, error) {
	if frames < 0 {
		return nil, fmt.Errorf("clip frames must be >= 0: %d", frames)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("clip sample rate must be > 0: %d", sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("clip channels must be > 0: %d", channels)
	}
	return &Clip{
		Samples:    make([]float64, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// Frames returns the per-channel sample count.
func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}

// Clone returns a deep copy of the clip.
func (c *Clip) Clone() *Clip {
	samples := make([]float64, len(c.Samples))
	copy(samples, c.Samples)
	return &Clip{Samples: samples, SampleRate: c.SampleRate, Channels: c.Channels}
}

// Mono returns a single-channel view of the clip: channel 0 data for mono
// input, the per-frame channel average otherwise. The returned slice aliases
// Samples only in the mono case.
func (c *Clip) Mono() []float64 {
	if c.Channels <= 1 {
		return c.Samples
	}
	frames := c.Frames()
	out := make([]float64, frames)
	inv := 1 / float64(c.Channels)
	for f := range frames {
		sum := 0.0
		base := f * c.Channels
		for ch := range c.Channels {
			sum += c.Samples[base+ch]
		}
		out[f] = sum * inv
	}
	return out
}

// Channel extracts channel ch as a new slice.
func (c *Clip) Channel(ch int) ([]float64, error) {
	if ch < 0 || ch >= c.Channels {
		return nil, fmt.Errorf("clip channel out of range: %d of %d", ch, c.Channels)
	}
	frames := c.Frames()
	out := make([]float64, frames)
	for f := range frames {
		out[f] = c.Samples[f*c.Channels+ch]
	}
	return out, nil
}
