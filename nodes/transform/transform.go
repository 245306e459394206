package transform

import (
	"context"

	"github.com/cwbudde/algo-audionodes/dsp/clip"
	"github.com/cwbudde/algo-audionodes/graph"
)

func decode(ctx context.Context, ec graph.Context, ref graph.AudioRef) (*graph.Clip, error) {
	if ref.IsEmpty() {
		return nil, graph.ErrEmptyAudio
	}
	return ec.DecodeAudio(ctx, ref)
}

// Concat appends audio b after audio a. Sample rates must match; a mono and
// a stereo input are harmonized to stereo.
type Concat struct {
	A graph.AudioRef `json:"a"`
	B graph.AudioRef `json:"b"`
}

// NewConcat returns a Concat node.
func NewConcat(a, b graph.AudioRef) *Concat {
	return &Concat{A: a, B: b}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *Concat) Validate() error { return nil }

// Process decodes both inputs, joins them, and re-encodes the result.
func (n *Concat) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	a, err := decode(ctx, ec, n.A)
	if err != nil {
		return graph.AudioRef{}, err
	}
	b, err := decode(ctx, ec, n.B)
	if err != nil {
		return graph.AudioRef{}, err
	}
	joined, err := clip.Concat(a, b)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, joined)
}

// ConcatList joins any number of audio references in order. An empty list
// yields an empty reference; a single element passes through untouched.
type ConcatList struct {
	AudioFiles []graph.AudioRef `json:"audio_files"`
}

// NewConcatList returns a ConcatList node.
func NewConcatList(refs ...graph.AudioRef) *ConcatList {
	return &ConcatList{AudioFiles: refs}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *ConcatList) Validate() error { return nil }

// Process joins the inputs in order and re-encodes the result.
func (n *ConcatList) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	switch len(n.AudioFiles) {
	case 0:
		return graph.AudioRef{}, nil
	case 1:
		return n.AudioFiles[0], nil
	}

	joined, err := decode(ctx, ec, n.AudioFiles[0])
	if err != nil {
		return graph.AudioRef{}, err
	}
	for _, ref := range n.AudioFiles[1:] {
		next, err := decode(ctx, ec, ref)
		if err != nil {
			return graph.AudioRef{}, err
		}
		joined, err = clip.Concat(joined, next)
		if err != nil {
			return graph.AudioRef{}, err
		}
	}
	return ec.EncodeAudio(ctx, joined)
}

// Normalize scales audio so its peak sits headroom decibels below full
// scale.
type Normalize struct {
	Audio    graph.AudioRef `json:"audio"`
	Headroom float64        `json:"headroom"`
}

// NewNormalize returns a Normalize node with 0.1 dB of headroom.
func NewNormalize(audio graph.AudioRef) *Normalize {
	return &Normalize{Audio: audio, Headroom: 0.1}
}

// Validate checks that the headroom is non-negative.
func (n *Normalize) Validate() error {
	if n.Headroom < 0 {
		return graph.ValidatePositiveFloat("headroom", n.Headroom)
	}
	return nil
}

// Process peak-normalizes the audio and re-encodes it.
func (n *Normalize) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	normalized, err := clip.Normalize(c, n.Headroom)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, normalized)
}

// OverlayAudio mixes audio b on top of audio a. The result is as long as
// the longer input.
type OverlayAudio struct {
	A graph.AudioRef `json:"a"`
	B graph.AudioRef `json:"b"`
}

// NewOverlayAudio returns an OverlayAudio node.
func NewOverlayAudio(a, b graph.AudioRef) *OverlayAudio {
	return &OverlayAudio{A: a, B: b}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *OverlayAudio) Validate() error { return nil }

// Process sums both inputs and re-encodes the result.
func (n *OverlayAudio) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	a, err := decode(ctx, ec, n.A)
	if err != nil {
		return graph.AudioRef{}, err
	}
	b, err := decode(ctx, ec, n.B)
	if err != nil {
		return graph.AudioRef{}, err
	}
	mixed, err := clip.Overlay(a, b)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, mixed)
}

// SliceAudio extracts the time range [start, end) in seconds. An end of 0
// or less means end of audio.
type SliceAudio struct {
	Audio graph.AudioRef `json:"audio"`
	Start float64        `json:"start"`
	End   float64        `json:"end"`
}

// NewSliceAudio returns a SliceAudio node for the given range.
func NewSliceAudio(audio graph.AudioRef, start, end float64) *SliceAudio {
	return &SliceAudio{Audio: audio, Start: start, End: end}
}

// Validate checks that start is non-negative and precedes a positive end.
func (n *SliceAudio) Validate() error {
	if n.Start < 0 {
		return graph.ValidatePositiveFloat("start", n.Start)
	}
	if n.End > 0 && n.End <= n.Start {
		return graph.ValidateFloatRange("end", n.End, n.Start, 1e9)
	}
	return nil
}

// Process slices the audio and re-encodes the result.
func (n *SliceAudio) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	sliced, err := clip.Slice(c, n.Start, n.End)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, sliced)
}

// Reverse plays audio backwards.
type Reverse struct {
	Audio graph.AudioRef `json:"audio"`
}

// NewReverse returns a Reverse node.
func NewReverse(audio graph.AudioRef) *Reverse {
	return &Reverse{Audio: audio}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *Reverse) Validate() error { return nil }

// Process reverses the frame order and re-encodes the result.
func (n *Reverse) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, clip.Reverse(c))
}

// FadeIn ramps the gain linearly from silence over the leading duration
// seconds.
type FadeIn struct {
	Audio    graph.AudioRef `json:"audio"`
	Duration float64        `json:"duration"`
}

// NewFadeIn returns a FadeIn node with a one-second ramp.
func NewFadeIn(audio graph.AudioRef) *FadeIn {
	return &FadeIn{Audio: audio, Duration: 1}
}

// Validate checks that the duration is positive.
func (n *FadeIn) Validate() error {
	return graph.ValidatePositiveFloat("duration", n.Duration)
}

// Process applies the ramp and re-encodes the result.
func (n *FadeIn) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	faded, err := clip.FadeIn(c, n.Duration)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, faded)
}

// FadeOut ramps the gain linearly to silence over the trailing duration
// seconds.
type FadeOut struct {
	Audio    graph.AudioRef `json:"audio"`
	Duration float64        `json:"duration"`
}

// NewFadeOut returns a FadeOut node with a one-second ramp.
func NewFadeOut(audio graph.AudioRef) *FadeOut {
	return &FadeOut{Audio: audio, Duration: 1}
}

// Validate checks that the duration is positive.
func (n *FadeOut) Validate() error {
	return graph.ValidatePositiveFloat("duration", n.Duration)
}

// Process applies the ramp and re-encodes the result.
func (n *FadeOut) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	faded, err := clip.FadeOut(c, n.Duration)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, faded)
}

// Repeat loops audio the given number of times. One loop returns the input
// unchanged.
type Repeat struct {
	Audio graph.AudioRef `json:"audio"`
	Loops int            `json:"loops"`
}

// NewRepeat returns a Repeat node with two loops.
func NewRepeat(audio graph.AudioRef) *Repeat {
	return &Repeat{Audio: audio, Loops: 2}
}

// Validate checks that the loop count is at least one.
func (n *Repeat) Validate() error {
	return graph.ValidateIntRange("loops", n.Loops, 1, 1<<20)
}

// Process tiles the audio and re-encodes the result.
func (n *Repeat) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	repeated, err := clip.Repeat(c, n.Loops)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, repeated)
}
