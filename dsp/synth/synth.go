// Package synth generates sample buffers from scratch (oscillators, noise,
// FM synthesis) and shapes existing buffers with amplitude envelopes.
package synth

import (
	"fmt"
	"math"
	"math/rand"
)

// Waveform enumerates oscillator shapes.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// ParseWaveform maps a waveform parameter name to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "sawtooth":
		return WaveSawtooth, nil
	case "triangle":
		return WaveTriangle, nil
	default:
		return 0, fmt.Errorf("unknown waveform: %q", name)
	}
}

// String returns the canonical parameter name of the waveform.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("synth.Waveform(%d)", int(w))
	}
}

// WaveformNames lists waveform parameter names in declaration order.
func WaveformNames() []string {
	return []string{"sine", "square", "sawtooth", "triangle"}
}

// PitchCurve enumerates pitch envelope glide shapes.
type PitchCurve int

const (
	CurveLinear PitchCurve = iota
	CurveExponential
)

// ParsePitchCurve maps a curve parameter name to a PitchCurve.
func ParsePitchCurve(name string) (PitchCurve, error) {
	switch name {
	case "linear":
		return CurveLinear, nil
	case "exponential":
		return CurveExponential, nil
	default:
		return 0, fmt.Errorf("unknown pitch curve: %q", name)
	}
}

// String returns the canonical parameter name of the curve.
func (c PitchCurve) String() string {
	switch c {
	case CurveExponential:
		return "exponential"
	default:
		return "linear"
	}
}

// PitchCurveNames lists pitch curve parameter names in declaration order.
func PitchCurveNames() []string {
	return []string{"linear", "exponential"}
}

// PitchEnvelope glides the oscillator frequency by Semitones over Seconds
// before settling on the base frequency. Amount zero disables the glide.
type PitchEnvelope struct {
	Semitones float64
	Seconds   float64
	Curve     PitchCurve
}

// Oscillator generates amplitude-scaled samples of the given waveform.
// The optional pitch envelope is applied through phase accumulation so the
// waveform stays continuous while the frequency glides.
func Oscillator(w Waveform, freqHz, amplitude, duration float64, sampleRate int, env *PitchEnvelope) ([]float64, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("oscillator frequency must be > 0: %g", freqHz)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("oscillator duration must be > 0: %g", duration)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("oscillator sample rate must be > 0: %d", sampleRate)
	}

	n := int(duration * float64(sampleRate))
	out := make([]float64, n)
	phase := 0.0
	invSR := 1 / float64(sampleRate)

	envSamples := 0
	if env != nil && env.Semitones != 0 && env.Seconds > 0 {
		envSamples = int(env.Seconds * float64(sampleRate))
		if envSamples > n {
			envSamples = n
		}
	}

	for i := range out {
		f := freqHz
		if envSamples > 0 && i < envSamples {
			// Glide from freq shifted by Semitones down to the base
			// frequency over the envelope duration.
			progress := float64(i) / float64(envSamples)
			offset := env.Semitones * (1 - progress)
			if env.Curve == CurveExponential {
				offset = env.Semitones * (1 - progress) * (1 - progress)
			}
			f = freqHz * math.Pow(2, offset/12)
		}

		out[i] = amplitude * sampleWave(w, phase)
		phase += f * invSR
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}
	return out, nil
}

// sampleWave evaluates one waveform cycle at phase in [0, 1).
func sampleWave(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude] with a
// deterministic seed.
func WhiteNoise(amplitude, duration float64, sampleRate int, seed int64) ([]float64, error) {
	if err := validateNoise(amplitude, duration, sampleRate); err != nil {
		return nil, err
	}
	n := int(duration * float64(sampleRate))
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// PinkNoise generates 1/f noise with the Voss-McCartney row algorithm,
// normalized to peak at amplitude.
func PinkNoise(amplitude, duration float64, sampleRate int, seed int64) ([]float64, error) {
	if err := validateNoise(amplitude, duration, sampleRate); err != nil {
		return nil, err
	}
	const rows = 16
	n := int(duration * float64(sampleRate))
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	values := make([]float64, rows)
	sum := 0.0
	for r := range values {
		values[r] = rng.Float64()*2 - 1
		sum += values[r]
	}

	peak := 0.0
	for i := range out {
		// Row r updates every 2^r samples.
		counter := i + 1
		for r := 0; r < rows; r++ {
			if counter&(1<<r) != 0 {
				sum -= values[r]
				values[r] = rng.Float64()*2 - 1
				sum += values[r]
				break
			}
		}
		out[i] = sum + (rng.Float64()*2 - 1)
		if a := math.Abs(out[i]); a > peak {
			peak = a
		}
	}

	if peak > 0 {
		scale := amplitude / peak
		for i := range out {
			out[i] *= scale
		}
	}
	return out, nil
}

// FM generates frequency-modulation synthesis output:
// amplitude * sin(2*pi*fc*t + index*sin(2*pi*fm*t)).
func FM(carrierHz, modulatorHz, index, amplitude, duration float64, sampleRate int) ([]float64, error) {
	if carrierHz <= 0 || modulatorHz <= 0 {
		return nil, fmt.Errorf("fm frequencies must be > 0: carrier=%g modulator=%g", carrierHz, modulatorHz)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("fm duration must be > 0: %g", duration)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("fm sample rate must be > 0: %d", sampleRate)
	}
	n := int(duration * float64(sampleRate))
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = amplitude * math.Sin(2*math.Pi*carrierHz*t+index*math.Sin(2*math.Pi*modulatorHz*t))
	}
	return out, nil
}

func validateNoise(amplitude, duration float64, sampleRate int) error {
	if amplitude < 0 {
		return fmt.Errorf("noise amplitude must be >= 0: %g", amplitude)
	}
	if duration <= 0 {
		return fmt.Errorf("noise duration must be > 0: %g", duration)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("noise sample rate must be > 0: %d", sampleRate)
	}
	return nil
}
