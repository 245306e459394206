// Package onset detects note/event onsets in audio via spectral flux and
// turns onset times into sample-accurate segment boundaries.
package onset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-audionodes/dsp/stft"
)

// Detection defaults, expressed in analysis frames at the configured hop.
const (
	DefaultFFTSize   = 2048
	DefaultHopLength = 512

	peakPreMax  = 3
	peakPostMax = 3
	peakPreAvg  = 10
	peakPostAvg = 10
	peakWait    = 4
	peakDelta   = 0.07

	silenceFloor = 1e-10
)

// Detector computes onset strength envelopes and onset times.
type Detector struct {
	sampleRate int
	analyzer   *stft.Analyzer
}

// Option configures a Detector.
type Option func(*detectorConfig)

type detectorConfig struct {
	fftSize   int
	hopLength int
}

// WithFFTSize overrides the analysis FFT size.
func WithFFTSize(n int) Option {
	return func(c *detectorConfig) { c.fftSize = n }
}

// WithHopLength overrides the analysis hop length.
func WithHopLength(n int) Option {
	return func(c *detectorConfig) { c.hopLength = n }
}

// NewDetector creates an onset detector for the given sample rate.
func NewDetector(sampleRate int, opts ...Option) (*Detector, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("onset detector sample rate must be > 0: %d", sampleRate)
	}
	cfg := detectorConfig{fftSize: DefaultFFTSize, hopLength: DefaultHopLength}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	analyzer, err := stft.New(cfg.fftSize, cfg.hopLength)
	if err != nil {
		return nil, err
	}
	return &Detector{sampleRate: sampleRate, analyzer: analyzer}, nil
}

// HopLength returns the analysis hop length in samples.
func (d *Detector) HopLength() int { return d.analyzer.HopLength() }

// Strength computes the onset strength envelope: per-frame positive
// spectral flux averaged across bins, normalized to a unit maximum. A
// near-silent input yields an all-zero envelope.
func (d *Detector) Strength(samples []float64) ([]float64, error) {
	mag, err := d.analyzer.Magnitude(samples)
	if err != nil {
		return nil, err
	}

	env := make([]float64, len(mag))
	for t := 1; t < len(mag); t++ {
		sum := 0.0
		for k, m := range mag[t] {
			if diff := m - mag[t-1][k]; diff > 0 {
				sum += diff
			}
		}
		env[t] = sum / float64(len(mag[t]))
	}

	if len(env) > 0 {
		if peak := floats.Max(env); peak > silenceFloor {
			floats.Scale(1/peak, env)
		} else {
			for i := range env {
				env[i] = 0
			}
		}
	}
	return env, nil
}

// Detect returns onset times in seconds, sorted ascending. Silence or
// near-silence yields an empty slice.
func (d *Detector) Detect(samples []float64) ([]float64, error) {
	env, err := d.Strength(samples)
	if err != nil {
		return nil, err
	}
	frames := PickPeaks(env, peakPreMax, peakPostMax, peakPreAvg, peakPostAvg, peakDelta, peakWait)
	times := make([]float64, len(frames))
	for i, f := range frames {
		times[i] = float64(f*d.analyzer.HopLength()) / float64(d.sampleRate)
	}
	return times, nil
}

// PickPeaks selects indices of env that are local maxima over
// [i-preMax, i+postMax], exceed the local mean over [i-preAvg, i+postAvg]
// by delta, and are at least wait indices after the previous pick.
func PickPeaks(env []float64, preMax, postMax, preAvg, postAvg int, delta float64, wait int) []int {
	var peaks []int
	last := -wait - 1
	for i := range env {
		if env[i] <= 0 {
			continue
		}
		if i-last <= wait {
			continue
		}
		if env[i] < windowMax(env, i-preMax, i+postMax) {
			continue
		}
		if env[i] < windowMean(env, i-preAvg, i+postAvg)+delta {
			continue
		}
		peaks = append(peaks, i)
		last = i
	}
	return peaks
}

func windowMax(env []float64, lo, hi int) float64 {
	lo, hi = clampRange(lo, hi, len(env))
	m := env[lo]
	for _, v := range env[lo+1 : hi+1] {
		if v > m {
			m = v
		}
	}
	return m
}

func windowMean(env []float64, lo, hi int) float64 {
	lo, hi = clampRange(lo, hi, len(env))
	sum := 0.0
	for _, v := range env[lo : hi+1] {
		sum += v
	}
	return sum / float64(hi-lo+1)
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
