package feature

import "fmt"

// SpectralCentroid computes the magnitude-weighted mean frequency of each
// frame of a [frame][bin] magnitude spectrogram, in Hz. Frames with no
// energy yield 0.
func SpectralCentroid(frames [][]float64, fftSize, sampleRate int) ([]float64, error) {
	if fftSize <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("spectral centroid fft size and sample rate must be > 0: %d, %d", fftSize, sampleRate)
	}
	binHz := float64(sampleRate) / float64(fftSize)
	out := make([]float64, len(frames))
	for t, row := range frames {
		var weighted, total float64
		for k, m := range row {
			weighted += float64(k) * binHz * m
			total += m
		}
		if total > 0 {
			out[t] = weighted / total
		}
	}
	return out, nil
}
