package feature

import (
	"fmt"
	"math"
)

// MFCC computes mel-frequency cepstral coefficients from a [frame][band]
// mel power spectrogram: the bands are converted to decibels (max
// reference) and compressed with an orthonormal DCT-II, keeping the first
// nMFCC coefficients per frame.
func MFCC(melPower [][]float64, nMFCC int) ([][]float64, error) {
	if nMFCC <= 0 {
		return nil, fmt.Errorf("mfcc coefficient count must be > 0: %d", nMFCC)
	}
	if len(melPower) == 0 {
		return nil, nil
	}
	bands := len(melPower[0])
	if nMFCC > bands {
		return nil, fmt.Errorf("mfcc coefficient count %d exceeds band count %d", nMFCC, bands)
	}

	// dB conversion referenced to the global maximum across all frames.
	flat := make([]float64, 0, len(melPower)*bands)
	for _, row := range melPower {
		flat = append(flat, row...)
	}
	db := PowerToDB(flat, MaxRef(flat), DefaultTopDB)

	out := make([][]float64, len(melPower))
	for t := range melPower {
		out[t] = dct2Ortho(db[t*bands:(t+1)*bands], nMFCC)
	}
	return out, nil
}

// dct2Ortho computes the first n coefficients of the orthonormal DCT-II.
//
// The band counts here are small and fixed per call, so the direct
// O(len(x)*n) evaluation stays cheap and avoids tying the transform to a
// specific FFT-based DCT variant.
func dct2Ortho(x []float64, n int) []float64 {
	size := len(x)
	out := make([]float64, n)
	scale0 := math.Sqrt(1 / float64(size))
	scale := math.Sqrt(2 / float64(size))
	for k := range n {
		sum := 0.0
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(size)))
		}
		if k == 0 {
			out[k] = sum * scale0
		} else {
			out[k] = sum * scale
		}
	}
	return out
}
