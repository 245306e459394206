package analysis

import (
	"context"

	"github.com/cwbudde/algo-audionodes/dsp/feature"
	"github.com/cwbudde/algo-audionodes/dsp/stft"
	"github.com/cwbudde/algo-audionodes/graph"
)

// STFT computes the short-time Fourier transform magnitude of an audio
// reference. Output shape is (1+n_fft/2, frames).
type STFT struct {
	Audio graph.AudioRef `json:"audio"`
	framing
}

// NewSTFT returns an STFT node with default framing.
func NewSTFT(audio graph.AudioRef) *STFT {
	return &STFT{Audio: audio, framing: defaultFraming()}
}

// Validate checks the framing parameters.
func (n *STFT) Validate() error {
	return n.framing.validate()
}

// Process decodes the audio and returns its magnitude spectrogram.
func (n *STFT) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	samples, _, err := decodeMono(ctx, ec, n.Audio)
	if err != nil {
		return graph.NumericArray{}, err
	}
	analyzer, err := n.analyzer()
	if err != nil {
		return graph.NumericArray{}, err
	}
	mag, err := analyzer.Magnitude(samples)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return transposed(mag)
}

// MelSpectrogram projects the power spectrogram onto a mel filterbank.
// Output shape is (n_mels, frames).
type MelSpectrogram struct {
	Audio graph.AudioRef `json:"audio"`
	framing
	NMels int     `json:"n_mels"`
	FMin  float64 `json:"fmin"`
	FMax  float64 `json:"fmax"`
}

// NewMelSpectrogram returns a MelSpectrogram node with 128 mel bands
// spanning 0 Hz to 8 kHz.
func NewMelSpectrogram(audio graph.AudioRef) *MelSpectrogram {
	return &MelSpectrogram{
		Audio:   audio,
		framing: defaultFraming(),
		NMels:   128,
		FMax:    8000,
	}
}

// Validate checks framing, band count, and frequency bounds.
func (n *MelSpectrogram) Validate() error {
	if err := n.framing.validate(); err != nil {
		return err
	}
	if err := graph.ValidateIntRange("n_mels", n.NMels, 1, n.FFTSize/2+1); err != nil {
		return err
	}
	return validateFreqRange(n.FMin, n.FMax)
}

// Process decodes the audio and returns its mel power spectrogram.
func (n *MelSpectrogram) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	melPower, _, err := n.melPower(ctx, ec)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return transposed(melPower)
}

func (n *MelSpectrogram) melPower(ctx context.Context, ec graph.Context) ([][]float64, int, error) {
	samples, sampleRate, err := decodeMono(ctx, ec, n.Audio)
	if err != nil {
		return nil, 0, err
	}
	analyzer, err := n.analyzer()
	if err != nil {
		return nil, 0, err
	}
	spec, err := analyzer.Transform(samples)
	if err != nil {
		return nil, 0, err
	}
	bank, err := feature.MelFilterbank(n.NMels, n.FFTSize, sampleRate, n.FMin, n.FMax)
	if err != nil {
		return nil, 0, err
	}
	melPower, err := feature.ApplyFilterbank(bank, stft.PowerFrames(spec))
	if err != nil {
		return nil, 0, err
	}
	return melPower, sampleRate, nil
}

// MFCC extracts mel-frequency cepstral coefficients. Output shape is
// (n_mfcc, frames).
type MFCC struct {
	Audio graph.AudioRef `json:"audio"`
	framing
	NMFCC int     `json:"n_mfcc"`
	NMels int     `json:"n_mels"`
	FMin  float64 `json:"fmin"`
	FMax  float64 `json:"fmax"`
}

// NewMFCC returns an MFCC node extracting 13 coefficients from a 128-band
// mel spectrogram.
func NewMFCC(audio graph.AudioRef) *MFCC {
	return &MFCC{
		Audio:   audio,
		framing: defaultFraming(),
		NMFCC:   13,
		NMels:   128,
		FMax:    8000,
	}
}

// Validate checks framing, coefficient and band counts, and frequency
// bounds.
func (n *MFCC) Validate() error {
	if err := n.framing.validate(); err != nil {
		return err
	}
	if err := graph.ValidateIntRange("n_mels", n.NMels, 1, n.FFTSize/2+1); err != nil {
		return err
	}
	if err := graph.ValidateIntRange("n_mfcc", n.NMFCC, 1, n.NMels); err != nil {
		return err
	}
	return validateFreqRange(n.FMin, n.FMax)
}

// Process decodes the audio and returns its MFCC matrix.
func (n *MFCC) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	mel := &MelSpectrogram{
		Audio:   n.Audio,
		framing: n.framing,
		NMels:   n.NMels,
		FMin:    n.FMin,
		FMax:    n.FMax,
	}
	melPower, _, err := mel.melPower(ctx, ec)
	if err != nil {
		return graph.NumericArray{}, err
	}
	coeffs, err := feature.MFCC(melPower, n.NMFCC)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return transposed(coeffs)
}

// ChromaSTFT folds the power spectrogram onto the twelve pitch classes.
// Output shape is (12, frames).
type ChromaSTFT struct {
	Audio graph.AudioRef `json:"audio"`
	framing
}

// NewChromaSTFT returns a ChromaSTFT node with default framing.
func NewChromaSTFT(audio graph.AudioRef) *ChromaSTFT {
	return &ChromaSTFT{Audio: audio, framing: defaultFraming()}
}

// Validate checks the framing parameters.
func (n *ChromaSTFT) Validate() error {
	return n.framing.validate()
}

// Process decodes the audio and returns its chromagram.
func (n *ChromaSTFT) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	samples, sampleRate, err := decodeMono(ctx, ec, n.Audio)
	if err != nil {
		return graph.NumericArray{}, err
	}
	analyzer, err := n.analyzer()
	if err != nil {
		return graph.NumericArray{}, err
	}
	spec, err := analyzer.Transform(samples)
	if err != nil {
		return graph.NumericArray{}, err
	}
	bank, err := feature.ChromaFilterbank(n.FFTSize, sampleRate)
	if err != nil {
		return graph.NumericArray{}, err
	}
	chroma, err := feature.Chroma(bank, stft.PowerFrames(spec))
	if err != nil {
		return graph.NumericArray{}, err
	}
	return transposed(chroma)
}

// SpectralContrast measures the peak-to-valley energy difference per octave
// band. Output shape is (n_bands+1, frames).
type SpectralContrast struct {
	Audio graph.AudioRef `json:"audio"`
	framing
	NBands int     `json:"n_bands"`
	FMin   float64 `json:"fmin"`
}

// NewSpectralContrast returns a SpectralContrast node with six octave bands
// above 200 Hz.
func NewSpectralContrast(audio graph.AudioRef) *SpectralContrast {
	return &SpectralContrast{
		Audio:   audio,
		framing: defaultFraming(),
		NBands:  feature.DefaultContrastBands,
		FMin:    200,
	}
}

// Validate checks framing, band count, and the lowest band edge.
func (n *SpectralContrast) Validate() error {
	if err := n.framing.validate(); err != nil {
		return err
	}
	if err := graph.ValidateIntRange("n_bands", n.NBands, 1, 12); err != nil {
		return err
	}
	return graph.ValidatePositiveFloat("fmin", n.FMin)
}

// Process decodes the audio and returns its spectral contrast matrix.
func (n *SpectralContrast) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	samples, sampleRate, err := decodeMono(ctx, ec, n.Audio)
	if err != nil {
		return graph.NumericArray{}, err
	}
	analyzer, err := n.analyzer()
	if err != nil {
		return graph.NumericArray{}, err
	}
	mag, err := analyzer.Magnitude(samples)
	if err != nil {
		return graph.NumericArray{}, err
	}
	contrast, err := feature.SpectralContrast(mag, n.FFTSize, sampleRate, n.NBands, n.FMin)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return transposed(contrast)
}

// SpectralCentroid computes the magnitude-weighted mean frequency of each
// frame as a 1-D array.
type SpectralCentroid struct {
	Audio graph.AudioRef `json:"audio"`
	framing
}

// NewSpectralCentroid returns a SpectralCentroid node with default framing.
func NewSpectralCentroid(audio graph.AudioRef) *SpectralCentroid {
	return &SpectralCentroid{Audio: audio, framing: defaultFraming()}
}

// Validate checks the framing parameters.
func (n *SpectralCentroid) Validate() error {
	return n.framing.validate()
}

// Process decodes the audio and returns the per-frame centroid in Hz.
func (n *SpectralCentroid) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	samples, sampleRate, err := decodeMono(ctx, ec, n.Audio)
	if err != nil {
		return graph.NumericArray{}, err
	}
	analyzer, err := n.analyzer()
	if err != nil {
		return graph.NumericArray{}, err
	}
	mag, err := analyzer.Magnitude(samples)
	if err != nil {
		return graph.NumericArray{}, err
	}
	centroid, err := feature.SpectralCentroid(mag, n.FFTSize, sampleRate)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return graph.NewVector(centroid), nil
}

func validateFreqRange(fmin, fmax float64) error {
	if fmin < 0 {
		return graph.ValidateFloatRange("fmin", fmin, 0, fmax)
	}
	if fmax <= fmin {
		return graph.ValidateFloatRange("fmax", fmax, fmin, 1e9)
	}
	return nil
}
