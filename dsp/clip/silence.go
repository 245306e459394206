package clip

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audionodes/graph"
)

const silenceWindowMs = 10

// SilenceOptions controls TrimSilence.
type SilenceOptions struct {
	// MinLengthMs is the minimum length of a non-silent part to keep.
	MinLengthMs int
	// ThresholdDB is the level below which a window counts as silence.
	ThresholdDB float64
	// ReductionFactor scales how much of each silent stretch is removed:
	// 1 removes it completely, 0 leaves it untouched.
	ReductionFactor float64
	// CrossfadeMs is the fade length applied at every join.
	CrossfadeMs int
	// MinSilenceMs is the shortest silent stretch that gets reduced.
	MinSilenceMs int
}

// DefaultSilenceOptions mirror common speech cleanup settings.
func DefaultSilenceOptions() SilenceOptions {
	return SilenceOptions{
		MinLengthMs:     100,
		ThresholdDB:     -32,
		ReductionFactor: 1,
		CrossfadeMs:     10,
		MinSilenceMs:    100,
	}
}

// TrimSilence shortens silent stretches of c. Non-silent parts shorter
// than MinLengthMs are treated as silence; silent stretches shorter than
// MinSilenceMs are kept as-is; longer ones are reduced by ReductionFactor
// with a crossfade at each join.
func TrimSilence(c *graph.Clip, opts SilenceOptions) (*graph.Clip, error) {
	if opts.ReductionFactor < 0 || opts.ReductionFactor > 1 {
		return nil, fmt.Errorf("silence reduction factor must be in [0, 1]: %g", opts.ReductionFactor)
	}
	if opts.MinLengthMs < 0 || opts.CrossfadeMs < 0 || opts.MinSilenceMs < 0 {
		return nil, fmt.Errorf("silence durations must be >= 0: min_length=%d crossfade=%d min_silence=%d",
			opts.MinLengthMs, opts.CrossfadeMs, opts.MinSilenceMs)
	}

	frames := c.Frames()
	if frames == 0 {
		return c.Clone(), nil
	}

	win := c.SampleRate * silenceWindowMs / 1000
	if win < 1 {
		win = 1
	}
	mono := c.Mono()
	threshold := math.Pow(10, opts.ThresholdDB/20)

	// Per-window voice activity.
	nWin := (frames + win - 1) / win
	active := make([]bool, nWin)
	for w := range nWin {
		lo := w * win
		hi := lo + win
		if hi > frames {
			hi = frames
		}
		sum := 0.0
		for _, v := range mono[lo:hi] {
			sum += v * v
		}
		rms := math.Sqrt(sum / float64(hi-lo))
		active[w] = rms >= threshold
	}

	minActiveWins := opts.MinLengthMs / silenceWindowMs
	minSilenceWins := opts.MinSilenceMs / silenceWindowMs

	// Collect active intervals in windows, dropping runts.
	type span struct{ lo, hi int } // window indices, hi exclusive
	var parts []span
	start := -1
	for w := 0; w <= nWin; w++ {
		on := w < nWin && active[w]
		if on && start < 0 {
			start = w
		}
		if !on && start >= 0 {
			if w-start >= minActiveWins {
				parts = append(parts, span{start, w})
			}
			start = -1
		}
	}
	if len(parts) == 0 {
		// Nothing above threshold; keep the clip untouched.
		return c.Clone(), nil
	}

	keep := func(out *graph.Clip, loFrame, hiFrame int) {
		out.Samples = append(out.Samples, c.Samples[loFrame*c.Channels:hiFrame*c.Channels]...)
	}

	out := &graph.Clip{SampleRate: c.SampleRate, Channels: c.Channels}
	prevEnd := 0
	for _, p := range parts {
		loFrame := p.lo * win
		hiFrame := p.hi * win
		if hiFrame > frames {
			hiFrame = frames
		}

		gapWins := p.lo - prevEnd/win
		gapFrames := loFrame - prevEnd
		if gapFrames > 0 {
			keptGap := gapFrames
			if gapWins >= minSilenceWins {
				keptGap = int(float64(gapFrames) * (1 - opts.ReductionFactor))
			}
			out.Samples = append(out.Samples, make([]float64, keptGap*c.Channels)...)
		}

		joinAt := out.Frames()
		keep(out, loFrame, hiFrame)
		crossfade(out, joinAt, opts.CrossfadeMs)
		prevEnd = hiFrame
	}

	return out, nil
}

// crossfade ramps a short region around the join frame to soften the cut.
func crossfade(c *graph.Clip, joinFrame, ms int) {
	n := c.SampleRate * ms / 1000
	if n <= 0 || joinFrame == 0 {
		return
	}
	frames := c.Frames()
	if joinFrame+n > frames {
		n = frames - joinFrame
	}
	for i := range n {
		gain := float64(i) / float64(n)
		base := (joinFrame + i) * c.Channels
		for ch := range c.Channels {
			c.Samples[base+ch] *= gain
		}
	}
}
