package transform

import (
	"context"

	"github.com/cwbudde/algo-audionodes/dsp/clip"
	"github.com/cwbudde/algo-audionodes/graph"
)

// RemoveSilence shortens or removes silent stretches. Silence is any run of
// at least MinLength ms whose level stays below Threshold dBFS; qualifying
// gaps of MinSilence ms or more are shrunk by ReductionFactor, and the
// joins are crossfaded over Crossfade ms.
type RemoveSilence struct {
	Audio           graph.AudioRef `json:"audio"`
	MinLength       int            `json:"min_length"`
	Threshold       float64        `json:"threshold"`
	ReductionFactor float64        `json:"reduction_factor"`
	Crossfade       int            `json:"crossfade"`
	MinSilence      int            `json:"min_silence_between_parts"`
}

// NewRemoveSilence returns a RemoveSilence node with the default trimming
// profile: 100 ms minimum runs below -32 dBFS removed entirely with 10 ms
// crossfades.
func NewRemoveSilence(audio graph.AudioRef) *RemoveSilence {
	defaults := clip.DefaultSilenceOptions()
	return &RemoveSilence{
		Audio:           audio,
		MinLength:       defaults.MinLengthMs,
		Threshold:       defaults.ThresholdDB,
		ReductionFactor: defaults.ReductionFactor,
		Crossfade:       defaults.CrossfadeMs,
		MinSilence:      defaults.MinSilenceMs,
	}
}

// Validate checks the trimming parameters.
func (n *RemoveSilence) Validate() error {
	if err := graph.ValidateIntRange("min_length", n.MinLength, 1, 60000); err != nil {
		return err
	}
	if err := graph.ValidateFloatRange("threshold", n.Threshold, -120, 0); err != nil {
		return err
	}
	if err := graph.ValidateFloatRange("reduction_factor", n.ReductionFactor, 0, 1); err != nil {
		return err
	}
	if err := graph.ValidateIntRange("crossfade", n.Crossfade, 0, 1000); err != nil {
		return err
	}
	return graph.ValidateIntRange("min_silence_between_parts", n.MinSilence, 0, 60000)
}

// Process trims the silence and re-encodes the result.
func (n *RemoveSilence) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	trimmed, err := clip.TrimSilence(c, clip.SilenceOptions{
		MinLengthMs:     n.MinLength,
		ThresholdDB:     n.Threshold,
		ReductionFactor: n.ReductionFactor,
		CrossfadeMs:     n.Crossfade,
		MinSilenceMs:    n.MinSilence,
	})
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, trimmed)
}
