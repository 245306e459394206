package transform

import (
	"context"
	"math"

	"github.com/cwbudde/algo-audionodes/graph"
)

// Tone renders a pure sine as a 1-D numeric array rather than encoded
// audio, for direct use by downstream array nodes.
type Tone struct {
	Frequency    float64 `json:"frequency"`
	SamplingRate int     `json:"sampling_rate"`
	Duration     float64 `json:"duration"`
	Phi          float64 `json:"phi"`
}

// NewTone returns a 440 Hz one-second tone at 44.1 kHz with zero initial
// phase.
func NewTone() *Tone {
	return &Tone{Frequency: 440, SamplingRate: 44100, Duration: 1}
}

// Validate checks the frequency, rate, and duration.
func (n *Tone) Validate() error {
	if err := graph.ValidatePositiveFloat("frequency", n.Frequency); err != nil {
		return err
	}
	if err := graph.ValidatePositiveInt("sampling_rate", n.SamplingRate); err != nil {
		return err
	}
	return graph.ValidatePositiveFloat("duration", n.Duration)
}

// Process renders the tone samples.
func (n *Tone) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	count := int(n.Duration * float64(n.SamplingRate))
	data := make([]float64, count)
	step := 2 * math.Pi * n.Frequency / float64(n.SamplingRate)
	for i := range data {
		data[i] = math.Sin(step*float64(i) + n.Phi)
	}
	return graph.NewVector(data), nil
}
