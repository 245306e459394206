package analysis

import (
	"context"

	"github.com/cwbudde/algo-audionodes/graph"
)

// GriffinLim reconstructs audio from a magnitude spectrogram by iterative
// phase estimation. The input array must be shaped (1+n_fft/2, frames); the
// FFT size is inferred from the bin count.
type GriffinLim struct {
	Magnitude graph.NumericArray `json:"magnitude_spectrogram"`
	framing
	Iterations int `json:"n_iter"`
	Length     int `json:"length"`

	// SampleRate is the rate stamped on the reconstructed clip.
	SampleRate int `json:"sample_rate"`
}

// NewGriffinLim returns a GriffinLim node with 32 iterations at 44.1 kHz.
func NewGriffinLim(magnitude graph.NumericArray) *GriffinLim {
	n := &GriffinLim{
		Magnitude:  magnitude,
		framing:    defaultFraming(),
		Iterations: 32,
		SampleRate: 44100,
	}
	if rows, _ := magnitude.Dims(); rows > 1 {
		n.FFTSize = (rows - 1) * 2
	}
	return n
}

// Validate checks the iteration count, framing, and magnitude shape.
func (n *GriffinLim) Validate() error {
	if err := graph.ValidateIntRange("n_iter", n.Iterations, 1, 1024); err != nil {
		return err
	}
	if err := graph.ValidatePositiveInt("sample_rate", n.SampleRate); err != nil {
		return err
	}
	if n.Length < 0 {
		return graph.ValidateIntRange("length", n.Length, 0, 1<<31)
	}
	return n.framing.validate()
}

// Process runs the reconstruction and re-encodes the result.
func (n *GriffinLim) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	if n.Magnitude.IsEmpty() {
		return graph.AudioRef{}, graph.ErrEmptyArray
	}

	analyzer, err := n.analyzer()
	if err != nil {
		return graph.AudioRef{}, err
	}

	// The array is (bins, frames); the analyzer wants [frame][bin].
	bins, frames := n.Magnitude.Dims()
	mag := make([][]float64, frames)
	for t := range mag {
		row := make([]float64, bins)
		for b := range row {
			row[b] = n.Magnitude.At(b, t)
		}
		mag[t] = row
	}

	samples, err := analyzer.GriffinLim(mag, n.Iterations, n.Length)
	if err != nil {
		return graph.AudioRef{}, err
	}
	clip := &graph.Clip{Samples: samples, SampleRate: n.SampleRate, Channels: 1}
	return ec.EncodeAudio(ctx, clip)
}
