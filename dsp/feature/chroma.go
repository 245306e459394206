package feature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const chromaBins = 12

// ChromaFilterbank maps the non-redundant FFT bins of an fftSize transform
// to the twelve pitch classes. Each bin contributes its energy to the pitch
// class nearest to its center frequency; bins below the first audible bin
// are ignored. The result has 12 rows and fftSize/2+1 columns.
func ChromaFilterbank(fftSize, sampleRate int) (*mat.Dense, error) {
	if fftSize <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("chroma filterbank fft size and sample rate must be > 0: %d, %d", fftSize, sampleRate)
	}
	bins := fftSize/2 + 1
	bank := mat.NewDense(chromaBins, bins, nil)
	binHz := float64(sampleRate) / float64(fftSize)

	for k := 1; k < bins; k++ {
		f := float64(k) * binHz
		if f < 20 {
			continue
		}
		midi := 69 + 12*math.Log2(f/440)
		pc := int(math.Round(midi)) % chromaBins
		if pc < 0 {
			pc += chromaBins
		}
		bank.Set(pc, k, 1)
	}
	return bank, nil
}

// Chroma computes a chromagram from a [frame][bin] power spectrogram and a
// chroma filterbank, normalizing each frame to a unit maximum.
func Chroma(bank *mat.Dense, power [][]float64) ([][]float64, error) {
	out, err := ApplyFilterbank(bank, power)
	if err != nil {
		return nil, err
	}
	for _, row := range out {
		if len(row) == 0 {
			continue
		}
		peak := floats.Max(row)
		if peak > 0 {
			floats.Scale(1/peak, row)
		}
	}
	return out, nil
}
