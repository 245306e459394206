// Package stft provides short-time Fourier analysis, inverse synthesis, and
// Griffin-Lim phase reconstruction on top of algo-fft plans.
package stft

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audionodes/dsp/window"
)

const normFloor = 1e-12

// Analyzer computes framed spectra with a fixed FFT size, hop length, and
// window. It is cheap to construct and not safe for concurrent use.
type Analyzer struct {
	fftSize    int
	hopLength  int
	winLength  int
	windowType window.Type
	center     bool

	win  []float64 // winLength coefficients zero-padded to fftSize
	plan *algofft.Plan[complex128]
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWindow selects the analysis window type. Default is Hann.
func WithWindow(t window.Type) Option {
	return func(a *Analyzer) { a.windowType = t }
}

// WithWinLength sets the window length. The window is zero-padded to the
// FFT size. Zero means the FFT size itself.
func WithWinLength(n int) Option {
	return func(a *Analyzer) { a.winLength = n }
}

// WithCenter controls reflection padding so that frame t is centered on
// sample t*hopLength. Default is centered.
func WithCenter(centered bool) Option {
	return func(a *Analyzer) { a.center = centered }
}

// New creates an analyzer. fftSize must be a power of two; hopLength must
// be positive; the window length must not exceed the FFT size.
func New(fftSize, hopLength int, opts ...Option) (*Analyzer, error) {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("stft fft size must be a power of two: %d", fftSize)
	}
	if hopLength <= 0 {
		return nil, fmt.Errorf("stft hop length must be > 0: %d", hopLength)
	}

	a := &Analyzer{
		fftSize:    fftSize,
		hopLength:  hopLength,
		windowType: window.TypeHann,
		center:     true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if a.winLength == 0 {
		a.winLength = fftSize
	}
	if a.winLength < 1 || a.winLength > fftSize {
		return nil, fmt.Errorf("stft window length must be in [1, %d]: %d", fftSize, a.winLength)
	}

	coeffs, err := window.Generate(a.windowType, a.winLength)
	if err != nil {
		return nil, err
	}
	a.win = make([]float64, fftSize)
	offset := (fftSize - a.winLength) / 2
	copy(a.win[offset:], coeffs)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}
	a.plan = plan

	return a, nil
}

// FFTSize returns the FFT frame size.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// HopLength returns the hop length in samples.
func (a *Analyzer) HopLength() int { return a.hopLength }

// Bins returns the number of non-redundant frequency bins per frame.
func (a *Analyzer) Bins() int { return a.fftSize/2 + 1 }

// NumFrames returns the frame count Transform produces for n input samples.
func (a *Analyzer) NumFrames(n int) int {
	if a.center {
		return 1 + n/a.hopLength
	}
	if n < a.fftSize {
		return 1
	}
	return 1 + (n-a.fftSize)/a.hopLength
}

func (a *Analyzer) padded(samples []float64) []float64 {
	if !a.center {
		return samples
	}
	pad := a.fftSize / 2
	out := make([]float64, len(samples)+2*pad)
	copy(out[pad:], samples)
	// Reflect at both edges; short inputs fall back to zero padding.
	for i := 1; i <= pad; i++ {
		if i < len(samples) {
			out[pad-i] = samples[i]
			out[pad+len(samples)-1+i] = samples[len(samples)-1-i]
		}
	}
	return out
}

// Transform computes the complex spectrogram of samples. The result is
// indexed [frame][bin] with Bins() bins per frame.
func (a *Analyzer) Transform(samples []float64) ([][]complex128, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("stft input must not be empty")
	}

	x := a.padded(samples)
	frames := a.NumFrames(len(samples))
	bins := a.Bins()

	frame := make([]float64, a.fftSize)
	timeBuf := make([]complex128, a.fftSize)
	freqBuf := make([]complex128, a.fftSize)

	out := make([][]complex128, frames)
	for t := range frames {
		start := t * a.hopLength
		for k := range frame {
			if start+k < len(x) {
				frame[k] = x[start+k]
			} else {
				frame[k] = 0
			}
		}
		vecmath.MulBlockInPlace(frame, a.win)

		for k, v := range frame {
			timeBuf[k] = complex(v, 0)
		}
		if err := a.plan.Forward(freqBuf, timeBuf); err != nil {
			return nil, fmt.Errorf("stft forward: %w", err)
		}

		row := make([]complex128, bins)
		copy(row, freqBuf[:bins])
		out[t] = row
	}
	return out, nil
}

// Magnitude computes |STFT| indexed [frame][bin].
func (a *Analyzer) Magnitude(samples []float64) ([][]float64, error) {
	spec, err := a.Transform(samples)
	if err != nil {
		return nil, err
	}
	return MagnitudeFrames(spec), nil
}

// MagnitudeFrames converts a complex spectrogram to per-frame magnitudes.
func MagnitudeFrames(spec [][]complex128) [][]float64 {
	out := make([][]float64, len(spec))
	for t, row := range spec {
		re := make([]float64, len(row))
		im := make([]float64, len(row))
		for i, c := range row {
			re[i] = real(c)
			im[i] = imag(c)
		}
		mag := make([]float64, len(row))
		vecmath.Magnitude(mag, re, im)
		out[t] = mag
	}
	return out
}

// PowerFrames converts a complex spectrogram to per-frame power values.
func PowerFrames(spec [][]complex128) [][]float64 {
	out := make([][]float64, len(spec))
	for t, row := range spec {
		re := make([]float64, len(row))
		im := make([]float64, len(row))
		for i, c := range row {
			re[i] = real(c)
			im[i] = imag(c)
		}
		pow := make([]float64, len(row))
		vecmath.Power(pow, re, im)
		out[t] = pow
	}
	return out
}

// Inverse reconstructs a time-domain signal from a complex spectrogram by
// windowed overlap-add. length > 0 clips or zero-pads the result; length 0
// returns the natural reconstruction length.
func (a *Analyzer) Inverse(spec [][]complex128, length int) ([]float64, error) {
	if len(spec) == 0 {
		return nil, fmt.Errorf("istft input must not be empty")
	}
	bins := a.Bins()

	total := (len(spec)-1)*a.hopLength + a.fftSize
	acc := make([]float64, total)
	norm := make([]float64, total)

	full := make([]complex128, a.fftSize)
	timeBuf := make([]complex128, a.fftSize)

	for t, row := range spec {
		if len(row) != bins {
			return nil, fmt.Errorf("istft frame %d has %d bins, want %d", t, len(row), bins)
		}
		for k := range bins {
			full[k] = row[k]
		}
		for k := bins; k < a.fftSize; k++ {
			full[k] = cmplx.Conj(row[a.fftSize-k])
		}
		if err := a.plan.Inverse(timeBuf, full); err != nil {
			return nil, fmt.Errorf("istft inverse: %w", err)
		}

		start := t * a.hopLength
		for k := range a.fftSize {
			acc[start+k] += real(timeBuf[k]) * a.win[k]
			norm[start+k] += a.win[k] * a.win[k]
		}
	}

	for i := range acc {
		if norm[i] > normFloor {
			acc[i] /= norm[i]
		}
	}

	if a.center {
		pad := a.fftSize / 2
		hi := len(acc) - pad
		if hi < pad {
			hi = pad
		}
		acc = acc[pad:hi]
	}

	if length > 0 {
		out := make([]float64, length)
		copy(out, acc)
		return out, nil
	}
	return acc, nil
}

// GriffinLim reconstructs a time-domain signal from a magnitude-only
// spectrogram (indexed [frame][bin]) by iterating between the time and
// frequency domains, keeping the given magnitudes and updating only phase.
func (a *Analyzer) GriffinLim(mag [][]float64, iterations, length int) ([]float64, error) {
	if len(mag) == 0 {
		return nil, fmt.Errorf("griffin-lim input must not be empty")
	}
	if iterations < 1 {
		return nil, fmt.Errorf("griffin-lim iterations must be >= 1: %d", iterations)
	}
	bins := a.Bins()

	spec := make([][]complex128, len(mag))
	for t, row := range mag {
		if len(row) != bins {
			return nil, fmt.Errorf("griffin-lim frame %d has %d bins, want %d", t, len(row), bins)
		}
		spec[t] = make([]complex128, bins)
		for k, m := range row {
			spec[t][k] = complex(m, 0)
		}
	}

	var signal []float64
	for iter := 0; iter < iterations; iter++ {
		x, err := a.Inverse(spec, 0)
		if err != nil {
			return nil, err
		}
		signal = x

		est, err := a.Transform(x)
		if err != nil {
			return nil, err
		}
		frames := len(spec)
		if len(est) < frames {
			frames = len(est)
		}
		for t := range frames {
			for k := range bins {
				phase := cmplx.Phase(est[t][k])
				m := mag[t][k]
				spec[t][k] = complex(m*math.Cos(phase), m*math.Sin(phase))
			}
		}
	}

	if length > 0 {
		out := make([]float64, length)
		copy(out, signal)
		return out, nil
	}
	return signal, nil
}
