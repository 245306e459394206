package analysis

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-audionodes/dsp/stft"
	"github.com/cwbudde/algo-audionodes/dsp/window"
	"github.com/cwbudde/algo-audionodes/graph"
)

// Parameter bounds shared by the spectral nodes.
const (
	MinFFTSize   = 128
	MaxFFTSize   = 8192
	MinHopLength = 64
	MaxHopLength = 2048

	DefaultFFTSize   = 2048
	DefaultHopLength = 512
)

// framing bundles the STFT parameters every spectral node carries.
type framing struct {
	FFTSize   int    `json:"n_fft"`
	HopLength int    `json:"hop_length"`
	WinLength int    `json:"win_length,omitempty"`
	Window    string `json:"window,omitempty"`
	Center    bool   `json:"center"`
}

func defaultFraming() framing {
	return framing{
		FFTSize:   DefaultFFTSize,
		HopLength: DefaultHopLength,
		Window:    window.TypeHann.String(),
		Center:    true,
	}
}

func (f framing) validate() error {
	if err := graph.ValidatePowerOfTwo("n_fft", f.FFTSize, MinFFTSize, MaxFFTSize); err != nil {
		return err
	}
	if err := graph.ValidateIntRange("hop_length", f.HopLength, MinHopLength, MaxHopLength); err != nil {
		return err
	}
	if f.WinLength != 0 {
		if err := graph.ValidateIntRange("win_length", f.WinLength, 1, f.FFTSize); err != nil {
			return err
		}
	}
	if _, err := window.Parse(f.windowName()); err != nil {
		return err
	}
	return nil
}

func (f framing) windowName() string {
	if f.Window == "" {
		return window.TypeHann.String()
	}
	return f.Window
}

func (f framing) analyzer() (*stft.Analyzer, error) {
	winType, err := window.Parse(f.windowName())
	if err != nil {
		return nil, err
	}
	opts := []stft.Option{
		stft.WithWindow(winType),
		stft.WithCenter(f.Center),
	}
	if f.WinLength != 0 {
		opts = append(opts, stft.WithWinLength(f.WinLength))
	}
	return stft.New(f.FFTSize, f.HopLength, opts...)
}

// decodeMono resolves ref and collapses the clip to a mono sample slice.
func decodeMono(ctx context.Context, ec graph.Context, ref graph.AudioRef) ([]float64, int, error) {
	if ref.IsEmpty() {
		return nil, 0, graph.ErrEmptyAudio
	}
	clip, err := ec.DecodeAudio(ctx, ref)
	if err != nil {
		return nil, 0, err
	}
	return clip.Mono(), clip.SampleRate, nil
}

// transposed packs [frame][band] feature rows into a (bands, frames) matrix,
// the conventional spectrogram orientation.
func transposed(frames [][]float64) (graph.NumericArray, error) {
	if len(frames) == 0 {
		return graph.NumericArray{Shape: []int{0, 0}}, nil
	}
	bands := len(frames[0])
	data := make([]float64, bands*len(frames))
	for t, row := range frames {
		if len(row) != bands {
			return graph.NumericArray{}, fmt.Errorf("frame %d has %d bands, frame 0 has %d", t, len(row), bands)
		}
		for b, v := range row {
			data[b*len(frames)+t] = v
		}
	}
	return graph.NewMatrix(bands, len(frames), data)
}
