package transform

import (
	"context"

	"github.com/cwbudde/algo-audionodes/dsp/resample"
	"github.com/cwbudde/algo-audionodes/graph"
)

// Resample converts audio to a new sample rate with a windowed-sinc
// interpolator. Matching rates pass through unchanged.
type Resample struct {
	Audio      graph.AudioRef `json:"audio"`
	SampleRate int            `json:"sample_rate"`
}

// NewResample returns a Resample node targeting 44.1 kHz.
func NewResample(audio graph.AudioRef) *Resample {
	return &Resample{Audio: audio, SampleRate: 44100}
}

// Validate checks the target rate.
func (n *Resample) Validate() error {
	return graph.ValidateIntRange("sample_rate", n.SampleRate, 8000, 192000)
}

// Process converts the rate and re-encodes the result.
func (n *Resample) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	c, err := decode(ctx, ec, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	converted, err := resample.ResampleClip(c, n.SampleRate)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return ec.EncodeAudio(ctx, converted)
}
