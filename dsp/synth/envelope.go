package synth

import "fmt"

// Sustain-equivalent level the decay phase ramps down to, as a fraction of
// the peak. There is no sustain stage; any samples past the release hold
// the last computed gain.
const sustainFraction = 0.7

// EnvelopeGains builds a per-frame gain curve of the given length for an
// attack-decay-release envelope: attack ramps 0 to peak, decay ramps peak
// to the sustain-equivalent level, release ramps the remaining gain to 0.
// Each phase length is its duration in seconds times the sample rate,
// clipped to the frames still available.
func EnvelopeGains(frames, sampleRate int, attack, decay, release, peak float64) ([]float64, error) {
	if frames < 0 {
		return nil, fmt.Errorf("envelope frame count must be >= 0: %d", frames)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("envelope sample rate must be > 0: %d", sampleRate)
	}
	if attack < 0 || decay < 0 || release < 0 {
		return nil, fmt.Errorf("envelope phase times must be >= 0: attack=%g decay=%g release=%g", attack, decay, release)
	}
	if peak < 0 || peak > 1 {
		return nil, fmt.Errorf("envelope peak amplitude must be in [0, 1]: %g", peak)
	}

	gains := make([]float64, frames)
	pos := 0
	gain := 0.0

	phaseLen := func(seconds float64) int {
		n := int(seconds * float64(sampleRate))
		if n > frames-pos {
			n = frames - pos
		}
		return n
	}

	// Attack: 0 -> peak. The first frame carries zero gain.
	n := phaseLen(attack)
	for i := range n {
		gain = peak * float64(i) / float64(n)
		gains[pos+i] = gain
	}
	if n > 0 {
		gain = peak
	}
	pos += n

	// Decay: peak -> sustain equivalent.
	sustain := peak * sustainFraction
	n = phaseLen(decay)
	for i := range n {
		gain = peak + (sustain-peak)*float64(i+1)/float64(n)
		gains[pos+i] = gain
	}
	pos += n

	// Release: remaining gain -> 0.
	start := gain
	n = phaseLen(release)
	for i := range n {
		gain = start * (1 - float64(i+1)/float64(n))
		gains[pos+i] = gain
	}
	pos += n

	// Hold the last computed gain for any remainder.
	for i := pos; i < frames; i++ {
		gains[i] = gain
	}
	return gains, nil
}
