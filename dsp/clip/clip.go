// Package clip implements whole-buffer edit operations on decoded audio:
// gain, concatenation, overlay, normalization, fades, reversal, looping,
// slicing, silence trimming, channel conversion, and multi-track mixing.
package clip

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audionodes/dsp/core"
	"github.com/cwbudde/algo-audionodes/graph"
)

var (
	// ErrNoTracks indicates a mix request where every input was empty.
	ErrNoTracks = errors.New("mix requires at least one non-empty track")

	// ErrUnknownMixMethod indicates an unsupported channel-reduction method.
	ErrUnknownMixMethod = errors.New("unknown channel mix method")

	// ErrSampleRateMismatch indicates two clips that cannot be combined
	// without resampling.
	ErrSampleRateMismatch = errors.New("sample rates do not match")
)

// MixMethod selects how stereo collapses to mono.
type MixMethod int

const (
	MixAverage MixMethod = iota
	MixLeft
	MixRight
)

// ParseMixMethod maps a method parameter name to a MixMethod.
func ParseMixMethod(name string) (MixMethod, error) {
	switch name {
	case "average":
		return MixAverage, nil
	case "left":
		return MixLeft, nil
	case "right":
		return MixRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMixMethod, name)
	}
}

// MixMethodNames lists method parameter names in declaration order.
func MixMethodNames() []string {
	return []string{"average", "left", "right"}
}

// String returns the parameter name of the method.
func (m MixMethod) String() string {
	switch m {
	case MixLeft:
		return "left"
	case MixRight:
		return "right"
	default:
		return "average"
	}
}

// Gain returns a copy of c scaled by factor, clamped to [-1, 1].
func Gain(c *graph.Clip, factor float64) *graph.Clip {
	out := c.Clone()
	if factor != 1 {
		vecmath.ScaleBlock(out.Samples, c.Samples, factor)
		clampSamples(out.Samples)
	}
	return out
}

// Normalize scales c so its peak sits headroomDB below full scale.
func Normalize(c *graph.Clip, headroomDB float64) (*graph.Clip, error) {
	if headroomDB < 0 {
		return nil, fmt.Errorf("normalize headroom must be >= 0 dB: %g", headroomDB)
	}
	peak := 0.0
	for _, v := range c.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return c.Clone(), nil
	}
	target := core.DBToLinear(-headroomDB)
	return Gain(c, target/peak), nil
}

// Concat appends b after a. Sample rates must match; channel layouts are
// harmonized to the wider of the two.
func Concat(a, b *graph.Clip) (*graph.Clip, error) {
	if a.SampleRate != b.SampleRate {
		return nil, fmt.Errorf("%w: %d != %d", ErrSampleRateMismatch, a.SampleRate, b.SampleRate)
	}
	a, b, err := matchChannels(a, b)
	if err != nil {
		return nil, err
	}
	out := &graph.Clip{
		Samples:    make([]float64, 0, len(a.Samples)+len(b.Samples)),
		SampleRate: a.SampleRate,
		Channels:   a.Channels,
	}
	out.Samples = append(out.Samples, a.Samples...)
	out.Samples = append(out.Samples, b.Samples...)
	return out, nil
}

// Overlay mixes b on top of a. The result length is the longer of the two.
func Overlay(a, b *graph.Clip) (*graph.Clip, error) {
	if a.SampleRate != b.SampleRate {
		return nil, fmt.Errorf("%w: %d != %d", ErrSampleRateMismatch, a.SampleRate, b.SampleRate)
	}
	a, b, err := matchChannels(a, b)
	if err != nil {
		return nil, err
	}
	long, short := a, b
	if len(b.Samples) > len(a.Samples) {
		long, short = b, a
	}
	out := long.Clone()
	vecmath.AddBlockInPlace(out.Samples[:len(short.Samples)], short.Samples)
	clampSamples(out.Samples)
	return out, nil
}

// Reverse returns c with its frame order reversed.
func Reverse(c *graph.Clip) *graph.Clip {
	out := c.Clone()
	frames := c.Frames()
	ch := c.Channels
	for f := range frames {
		src := (frames - 1 - f) * ch
		dst := f * ch
		copy(out.Samples[dst:dst+ch], c.Samples[src:src+ch])
	}
	return out
}

// FadeIn ramps the first seconds of c linearly from silence.
func FadeIn(c *graph.Clip, seconds float64) (*graph.Clip, error) {
	if seconds < 0 {
		return nil, fmt.Errorf("fade duration must be >= 0: %g", seconds)
	}
	out := c.Clone()
	n := core.ClampInt(int(seconds*float64(c.SampleRate)), 0, c.Frames())
	applyRamp(out, 0, n, true)
	return out, nil
}

// FadeOut ramps the last seconds of c linearly to silence.
func FadeOut(c *graph.Clip, seconds float64) (*graph.Clip, error) {
	if seconds < 0 {
		return nil, fmt.Errorf("fade duration must be >= 0: %g", seconds)
	}
	out := c.Clone()
	n := core.ClampInt(int(seconds*float64(c.SampleRate)), 0, c.Frames())
	applyRamp(out, c.Frames()-n, n, false)
	return out, nil
}

// Repeat loops c the given number of times. loops == 1 returns a copy.
func Repeat(c *graph.Clip, loops int) (*graph.Clip, error) {
	if loops < 1 {
		return nil, fmt.Errorf("repeat loops must be >= 1: %d", loops)
	}
	out := &graph.Clip{
		Samples:    make([]float64, 0, len(c.Samples)*loops),
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
	}
	for range loops {
		out.Samples = append(out.Samples, c.Samples...)
	}
	return out, nil
}

// Slice extracts [start, end) seconds of c. A non-positive end means
// end-of-clip; the range is clipped to the clip bounds.
func Slice(c *graph.Clip, start, end float64) (*graph.Clip, error) {
	if start < 0 {
		return nil, fmt.Errorf("slice start must be >= 0: %g", start)
	}
	frames := c.Frames()
	startF := core.ClampInt(int(start*float64(c.SampleRate)), 0, frames)
	endF := frames
	if end > 0 {
		endF = core.ClampInt(int(end*float64(c.SampleRate)), 0, frames)
	}
	if endF < startF {
		return nil, fmt.Errorf("slice end %g precedes start %g", end, start)
	}
	out := &graph.Clip{
		Samples:    append([]float64(nil), c.Samples[startF*c.Channels:endF*c.Channels]...),
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
	}
	return out, nil
}

// MonoToStereo duplicates a mono clip across two channels. A clip that is
// already stereo is returned as an unmodified copy.
func MonoToStereo(c *graph.Clip) (*graph.Clip, error) {
	switch c.Channels {
	case 2:
		return c.Clone(), nil
	case 1:
		out := &graph.Clip{
			Samples:    make([]float64, len(c.Samples)*2),
			SampleRate: c.SampleRate,
			Channels:   2,
		}
		for f, v := range c.Samples {
			out.Samples[2*f] = v
			out.Samples[2*f+1] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("mono to stereo expects 1 or 2 channels: %d", c.Channels)
	}
}

// StereoToMono collapses a stereo clip to mono using the given method. A
// clip that is already mono is returned as an unmodified copy.
func StereoToMono(c *graph.Clip, method MixMethod) (*graph.Clip, error) {
	switch method {
	case MixAverage, MixLeft, MixRight:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMixMethod, int(method))
	}
	if c.Channels == 1 {
		return c.Clone(), nil
	}
	if c.Channels != 2 {
		return nil, fmt.Errorf("stereo to mono expects 1 or 2 channels: %d", c.Channels)
	}

	frames := c.Frames()
	out := &graph.Clip{
		Samples:    make([]float64, frames),
		SampleRate: c.SampleRate,
		Channels:   1,
	}
	for f := range frames {
		l := c.Samples[2*f]
		r := c.Samples[2*f+1]
		switch method {
		case MixLeft:
			out.Samples[f] = l
		case MixRight:
			out.Samples[f] = r
		default:
			out.Samples[f] = (l + r) / 2
		}
	}
	return out, nil
}

// Mix overlays up to len(tracks) clips with per-track linear gains. Nil
// tracks are skipped; if every track is nil, Mix fails with ErrNoTracks.
func Mix(tracks []*graph.Clip, gains []float64) (*graph.Clip, error) {
	if len(gains) != len(tracks) {
		return nil, fmt.Errorf("mix gain count %d does not match track count %d", len(gains), len(tracks))
	}
	var acc *graph.Clip
	for i, t := range tracks {
		if t == nil {
			continue
		}
		g := Gain(t, gains[i])
		if acc == nil {
			acc = g
			continue
		}
		mixed, err := Overlay(acc, g)
		if err != nil {
			return nil, err
		}
		acc = mixed
	}
	if acc == nil {
		return nil, ErrNoTracks
	}
	return acc, nil
}

func matchChannels(a, b *graph.Clip) (*graph.Clip, *graph.Clip, error) {
	if a.Channels == b.Channels {
		return a, b, nil
	}
	var err error
	if a.Channels < b.Channels {
		a, err = MonoToStereo(a)
	} else {
		b, err = MonoToStereo(b)
	}
	return a, b, err
}

func applyRamp(c *graph.Clip, startFrame, frames int, rising bool) {
	if frames <= 0 {
		return
	}
	for i := range frames {
		t := float64(i) / float64(frames)
		gain := t
		if !rising {
			gain = 1 - t
		}
		base := (startFrame + i) * c.Channels
		for ch := range c.Channels {
			c.Samples[base+ch] *= gain
		}
	}
}

func clampSamples(s []float64) {
	for i, v := range s {
		if v > 1 {
			s[i] = 1
		} else if v < -1 {
			s[i] = -1
		}
	}
}
