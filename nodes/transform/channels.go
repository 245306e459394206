package transform

import (
	"context"

	"github.com/cwbudde/algo-audionodes/dsp/clip"
	"github.com/cwbudde/algo-audionodes/graph"
)

// MonoToStereo duplicates a mono channel into two. Stereo input passes
// through unchanged.
type MonoToStereo struct {
	Audio graph.AudioRef `json:"audio"`
}

// NewMonoToStereo returns a MonoToStereo node.
func NewMonoToStereo(audio graph.AudioRef) *MonoToStereo {
	return &MonoToStereo{Audio: audio}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *MonoToStereo) Validate() error { return nil }

// Process converts the channel layout and re-encodes the result.
func (n *MonoToStereo) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	stereo, err := clip.MonoToStereo(c)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, stereo)
}

// StereoToMono collapses stereo to mono using the configured method:
// average, left, or right. Mono input passes through unchanged.
type StereoToMono struct {
	Audio  graph.AudioRef `json:"audio"`
	Method string         `json:"method"`
}

// NewStereoToMono returns a StereoToMono node averaging both channels.
func NewStereoToMono(audio graph.AudioRef) *StereoToMono {
	return &StereoToMono{Audio: audio, Method: clip.MixAverage.String()}
}

// Validate checks the mix method name.
func (n *StereoToMono) Validate() error {
	_, err := clip.ParseMixMethod(n.Method)
	return err
}

// Process converts the channel layout and re-encodes the result.
func (n *StereoToMono) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	method, err := clip.ParseMixMethod(n.Method)
	if err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	mono, err := clip.StereoToMono(c, method)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, mono)
}

// MixerTracks is the fixed track count of the AudioMixer node.
const MixerTracks = 5

// AudioMixer sums up to five tracks with per-track gain. Empty tracks are
// skipped; mixing nothing is an error. A single non-empty track returns
// that track's content scaled by its own gain.
type AudioMixer struct {
	Tracks [MixerTracks]graph.AudioRef `json:"tracks"`
	Gains  [MixerTracks]float64        `json:"gains"`
}

// NewAudioMixer returns a mixer with unit gain on every track.
func NewAudioMixer() *AudioMixer {
	m := &AudioMixer{}
	for i := range m.Gains {
		m.Gains[i] = 1
	}
	return m
}

// Validate checks that every gain is within [0, 2].
func (n *AudioMixer) Validate() error {
	for _, g := range n.Gains {
		if err := graph.ValidateFloatRange("gain", g, 0, 2); err != nil {
			return err
		}
	}
	return nil
}

// Process decodes the non-empty tracks, mixes them, and re-encodes the
// result. All-empty input returns clip.ErrNoTracks.
func (n *AudioMixer) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	clips := make([]*graph.Clip, MixerTracks)
	for i, ref := range n.Tracks {
		if ref.IsEmpty() {
			continue
		}
		c, err := ec.DecodeAudio(ctx, ref)
		if err != nil {
			return graph.AudioRef{}, err
		}
		clips[i] = c
	}
	mixed, err := clip.Mix(clips, n.Gains[:])
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, mixed)
}
