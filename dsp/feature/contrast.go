package feature

import (
	"fmt"
	"math"
	"sort"
)

// Defaults for spectral contrast band layout.
const (
	DefaultContrastBands = 6
	DefaultContrastFmin  = 200.0
	contrastQuantile     = 0.02
)

// SpectralContrast measures the per-band difference between spectral peaks
// and valleys of a [frame][bin] magnitude spectrogram. Bands are octave
// spaced starting at fmin, with one sub-fmin band in front, giving
// nBands+1 values per frame. The result is indexed [frame][band], in dB.
func SpectralContrast(frames [][]float64, fftSize, sampleRate, nBands int, fmin float64) ([][]float64, error) {
	if nBands <= 0 {
		return nil, fmt.Errorf("spectral contrast band count must be > 0: %d", nBands)
	}
	if fmin <= 0 {
		return nil, fmt.Errorf("spectral contrast fmin must be > 0: %g", fmin)
	}
	if len(frames) == 0 {
		return nil, nil
	}
	bins := len(frames[0])
	binHz := float64(sampleRate) / float64(fftSize)

	// Octave band edges: [0, fmin, 2*fmin, 4*fmin, ...] clipped to Nyquist.
	edges := make([]float64, nBands+2)
	edges[0] = 0
	for i := 1; i < len(edges); i++ {
		edges[i] = fmin * math.Pow(2, float64(i-1))
	}

	out := make([][]float64, len(frames))
	scratch := make([]float64, 0, bins)
	for t, row := range frames {
		vals := make([]float64, nBands+1)
		for b := range nBands + 1 {
			lo := int(math.Ceil(edges[b] / binHz))
			hi := int(math.Floor(edges[b+1] / binHz))
			if hi >= bins {
				hi = bins - 1
			}
			if lo > hi {
				vals[b] = 0
				continue
			}
			scratch = scratch[:0]
			scratch = append(scratch, row[lo:hi+1]...)
			sort.Float64s(scratch)

			q := int(float64(len(scratch)) * contrastQuantile)
			if q < 1 {
				q = 1
			}
			valley := meanOf(scratch[:q])
			peak := meanOf(scratch[len(scratch)-q:])
			vals[b] = 20 * (math.Log10(math.Max(AminAmplitude, peak)) -
				math.Log10(math.Max(AminAmplitude, valley)))
		}
		out[t] = vals
	}
	return out, nil
}

func meanOf(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
