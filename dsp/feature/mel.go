package feature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// HzToMel converts a frequency in Hz to the mel scale (HTK formula).
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz converts a mel value back to Hz.
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// MelFilterbank builds a bank of nMels triangular filters over the
// non-redundant FFT bins of an fftSize transform at sampleRate. Filters
// span [fmin, fmax] on the mel scale. The result has nMels rows and
// fftSize/2+1 columns.
func MelFilterbank(nMels, fftSize, sampleRate int, fmin, fmax float64) (*mat.Dense, error) {
	if nMels <= 0 {
		return nil, fmt.Errorf("mel filterbank band count must be > 0: %d", nMels)
	}
	if fftSize <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("mel filterbank fft size and sample rate must be > 0: %d, %d", fftSize, sampleRate)
	}
	nyquist := float64(sampleRate) / 2
	if fmax <= 0 || fmax > nyquist {
		fmax = nyquist
	}
	if fmin < 0 || fmin >= fmax {
		return nil, fmt.Errorf("mel filterbank requires 0 <= fmin < fmax: fmin=%g fmax=%g", fmin, fmax)
	}

	bins := fftSize/2 + 1

	// Band edges equally spaced on the mel scale, nMels+2 points.
	loMel := HzToMel(fmin)
	hiMel := HzToMel(fmax)
	edges := make([]float64, nMels+2)
	for i := range edges {
		m := loMel + (hiMel-loMel)*float64(i)/float64(nMels+1)
		edges[i] = MelToHz(m)
	}

	bank := mat.NewDense(nMels, bins, nil)
	binHz := float64(sampleRate) / float64(fftSize)
	for m := range nMels {
		lo, center, hi := edges[m], edges[m+1], edges[m+2]
		for k := range bins {
			f := float64(k) * binHz
			var w float64
			switch {
			case f <= lo || f >= hi:
				w = 0
			case f < center:
				w = (f - lo) / (center - lo)
			default:
				w = (hi - f) / (hi - center)
			}
			bank.Set(m, k, w)
		}
	}
	return bank, nil
}

// ApplyFilterbank projects a [frame][bin] spectrogram through a filterbank
// with rows-per-band layout, returning [frame][band] values.
func ApplyFilterbank(bank *mat.Dense, frames [][]float64) ([][]float64, error) {
	bands, bins := bank.Dims()
	if len(frames) == 0 {
		return nil, nil
	}
	if len(frames[0]) != bins {
		return nil, fmt.Errorf("filterbank expects %d bins per frame: %d", bins, len(frames[0]))
	}

	flat := make([]float64, len(frames)*bins)
	for t, row := range frames {
		copy(flat[t*bins:], row)
	}
	spec := mat.NewDense(len(frames), bins, flat)

	var projected mat.Dense
	projected.Mul(spec, bank.T())

	out := make([][]float64, len(frames))
	for t := range out {
		row := make([]float64, bands)
		mat.Row(row, t, &projected)
		out[t] = row
	}
	return out, nil
}
