// Package resample converts audio between sample rates with a windowed-sinc
// interpolation kernel.
package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audionodes/graph"
)

const (
	defaultTaps = 32
	cutoffScale = 0.95
)

type config struct {
	taps int
}

// Option configures resampling.
type Option func(*config)

// WithTaps sets the one-sided kernel width in input samples. More taps
// improve stopband rejection at higher cost.
func WithTaps(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.taps = n
		}
	}
}

// Resample converts in from inRate to outRate. The output length is
// round(len(in) * outRate / inRate).
func Resample(in []float64, inRate, outRate int, opts ...Option) ([]float64, error) {
	if inRate <= 0 || outRate <= 0 {
		return nil, fmt.Errorf("resample rates must be > 0: in=%d out=%d", inRate, outRate)
	}
	if len(in) == 0 {
		return nil, nil
	}
	if inRate == outRate {
		out := make([]float64, len(in))
		copy(out, in)
		return out, nil
	}

	cfg := config{taps: defaultTaps}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ratio := float64(outRate) / float64(inRate)
	outLen := int(math.Round(float64(len(in)) * ratio))
	out := make([]float64, outLen)

	// Downsampling moves the cutoff below the output Nyquist.
	cutoff := cutoffScale
	if ratio < 1 {
		cutoff *= ratio
	}

	taps := cfg.taps
	for i := range out {
		center := float64(i) / ratio
		base := int(math.Floor(center))

		var acc, norm float64
		for j := base - taps + 1; j <= base+taps; j++ {
			if j < 0 || j >= len(in) {
				continue
			}
			x := center - float64(j)
			w := sinc(cutoff*x) * taper(x/float64(taps))
			acc += in[j] * w
			norm += w
		}
		if norm > 1e-12 {
			acc /= norm
		}
		out[i] = acc
	}
	return out, nil
}

// ResampleClip converts every channel of c to outRate.
func ResampleClip(c *graph.Clip, outRate int, opts ...Option) (*graph.Clip, error) {
	if c.SampleRate == outRate {
		return c.Clone(), nil
	}
	channels := make([][]float64, c.Channels)
	outFrames := 0
	for ch := range c.Channels {
		data, err := c.Channel(ch)
		if err != nil {
			return nil, err
		}
		res, err := Resample(data, c.SampleRate, outRate, opts...)
		if err != nil {
			return nil, err
		}
		channels[ch] = res
		outFrames = len(res)
	}

	out := &graph.Clip{
		Samples:    make([]float64, outFrames*c.Channels),
		SampleRate: outRate,
		Channels:   c.Channels,
	}
	for ch, data := range channels {
		for f, v := range data {
			out.Samples[f*c.Channels+ch] = v
		}
	}
	return out, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// taper evaluates a Hann taper over x in [-1, 1], zero outside.
func taper(x float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	return 0.5 + 0.5*math.Cos(math.Pi*x)
}
