// Package synthesis provides the signal-generation node catalog:
// oscillators with optional pitch envelopes, white and pink noise, FM
// synthesis, and an attack-decay-release amplitude envelope.
package synthesis

import (
	"context"

	"github.com/cwbudde/algo-audionodes/dsp/synth"
	"github.com/cwbudde/algo-audionodes/graph"
)

// Sample-rate bounds accepted by the generator nodes.
const (
	MinSampleRate = 8000
	MaxSampleRate = 192000
)

func validateGenerator(amplitude, duration float64, sampleRate int) error {
	if err := graph.ValidateFloatRange("amplitude", amplitude, 0, 1); err != nil {
		return err
	}
	if err := graph.ValidatePositiveFloat("duration", duration); err != nil {
		return err
	}
	return graph.ValidateIntRange("sample_rate", sampleRate, MinSampleRate, MaxSampleRate)
}

func encodeMono(ctx context.Context, ec graph.Context, samples []float64, sampleRate int) (graph.AudioRef, error) {
	clip := &graph.Clip{Samples: samples, SampleRate: sampleRate, Channels: 1}
	return ec.EncodeAudio(ctx, clip)
}

// Oscillator generates a periodic waveform, optionally preceded by a pitch
// glide expressed in semitones over a fixed time.
type Oscillator struct {
	Waveform      string  `json:"waveform"`
	Frequency     float64 `json:"frequency"`
	Amplitude     float64 `json:"amplitude"`
	Duration      float64 `json:"duration"`
	SampleRate    int     `json:"sample_rate"`
	PitchSemitone float64 `json:"pitch_envelope_amount"`
	PitchTime     float64 `json:"pitch_envelope_time"`
	PitchCurve    string  `json:"pitch_envelope_curve"`
}

// NewOscillator returns a 440 Hz sine oscillator at half amplitude for one
// second at 44.1 kHz, with no pitch envelope.
func NewOscillator() *Oscillator {
	return &Oscillator{
		Waveform:   synth.WaveSine.String(),
		Frequency:  440,
		Amplitude:  0.5,
		Duration:   1,
		SampleRate: 44100,
		PitchTime:  0.5,
		PitchCurve: synth.CurveLinear.String(),
	}
}

// Validate checks the waveform name, curve name, and numeric bounds.
func (n *Oscillator) Validate() error {
	if _, err := synth.ParseWaveform(n.Waveform); err != nil {
		return err
	}
	if _, err := synth.ParsePitchCurve(n.PitchCurve); err != nil {
		return err
	}
	if err := graph.ValidatePositiveFloat("frequency", n.Frequency); err != nil {
		return err
	}
	if n.PitchTime < 0 {
		return graph.ValidatePositiveFloat("pitch_envelope_time", n.PitchTime)
	}
	return validateGenerator(n.Amplitude, n.Duration, n.SampleRate)
}

// Process renders the waveform and encodes it as mono audio.
func (n *Oscillator) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	w, err := synth.ParseWaveform(n.Waveform)
	if err != nil {
		return graph.AudioRef{}, err
	}
	var env *synth.PitchEnvelope
	if n.PitchSemitone != 0 && n.PitchTime > 0 {
		curve, err := synth.ParsePitchCurve(n.PitchCurve)
		if err != nil {
			return graph.AudioRef{}, err
		}
		env = &synth.PitchEnvelope{
			Semitones: n.PitchSemitone,
			Seconds:   n.PitchTime,
			Curve:     curve,
		}
	}
	samples, err := synth.Oscillator(w, n.Frequency, n.Amplitude, n.Duration, n.SampleRate, env)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return encodeMono(ctx, ec, samples, n.SampleRate)
}

// WhiteNoise generates uniform spectral-density noise.
type WhiteNoise struct {
	Amplitude  float64 `json:"amplitude"`
	Duration   float64 `json:"duration"`
	SampleRate int     `json:"sample_rate"`
	Seed       int64   `json:"seed"`
}

// NewWhiteNoise returns a half-amplitude one-second noise generator at
// 44.1 kHz.
func NewWhiteNoise() *WhiteNoise {
	return &WhiteNoise{Amplitude: 0.5, Duration: 1, SampleRate: 44100}
}

// Validate checks the numeric bounds.
func (n *WhiteNoise) Validate() error {
	return validateGenerator(n.Amplitude, n.Duration, n.SampleRate)
}

// Process renders the noise and encodes it as mono audio.
func (n *WhiteNoise) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	samples, err := synth.WhiteNoise(n.Amplitude, n.Duration, n.SampleRate, n.Seed)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return encodeMono(ctx, ec, samples, n.SampleRate)
}

// PinkNoise generates 1/f noise via the Voss-McCartney algorithm.
type PinkNoise struct {
	Amplitude  float64 `json:"amplitude"`
	Duration   float64 `json:"duration"`
	SampleRate int     `json:"sample_rate"`
	Seed       int64   `json:"seed"`
}

// NewPinkNoise returns a half-amplitude one-second pink-noise generator at
// 44.1 kHz.
func NewPinkNoise() *PinkNoise {
	return &PinkNoise{Amplitude: 0.5, Duration: 1, SampleRate: 44100}
}

// Validate checks the numeric bounds.
func (n *PinkNoise) Validate() error {
	return validateGenerator(n.Amplitude, n.Duration, n.SampleRate)
}

// Process renders the noise and encodes it as mono audio.
func (n *PinkNoise) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	samples, err := synth.PinkNoise(n.Amplitude, n.Duration, n.SampleRate, n.Seed)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return encodeMono(ctx, ec, samples, n.SampleRate)
}

// FMSynthesis modulates a carrier's phase with a second oscillator.
type FMSynthesis struct {
	Carrier         float64 `json:"carrier_frequency"`
	Modulator       float64 `json:"modulator_frequency"`
	ModulationIndex float64 `json:"modulation_index"`
	Amplitude       float64 `json:"amplitude"`
	Duration        float64 `json:"duration"`
	SampleRate      int     `json:"sample_rate"`
}

// NewFMSynthesis returns a 440 Hz carrier modulated at 110 Hz with index 5.
func NewFMSynthesis() *FMSynthesis {
	return &FMSynthesis{
		Carrier:         440,
		Modulator:       110,
		ModulationIndex: 5,
		Amplitude:       0.5,
		Duration:        1,
		SampleRate:      44100,
	}
}

// Validate checks the frequencies, index, and generator bounds.
func (n *FMSynthesis) Validate() error {
	if err := graph.ValidatePositiveFloat("carrier_frequency", n.Carrier); err != nil {
		return err
	}
	if err := graph.ValidatePositiveFloat("modulator_frequency", n.Modulator); err != nil {
		return err
	}
	if n.ModulationIndex < 0 {
		return graph.ValidatePositiveFloat("modulation_index", n.ModulationIndex)
	}
	return validateGenerator(n.Amplitude, n.Duration, n.SampleRate)
}

// Process renders the modulated tone and encodes it as mono audio.
func (n *FMSynthesis) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	samples, err := synth.FM(n.Carrier, n.Modulator, n.ModulationIndex, n.Amplitude, n.Duration, n.SampleRate)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return encodeMono(ctx, ec, samples, n.SampleRate)
}

// Envelope shapes existing audio with an attack-decay-release gain curve.
// The output length equals the input length; stereo inputs are shaped per
// frame.
type Envelope struct {
	Audio   graph.AudioRef `json:"audio"`
	Attack  float64        `json:"attack"`
	Decay   float64        `json:"decay"`
	Release float64        `json:"release"`
	Peak    float64        `json:"peak_amplitude"`
}

// NewEnvelope returns an envelope with a 100 ms attack, 300 ms decay,
// 500 ms release, and unit peak.
func NewEnvelope(audio graph.AudioRef) *Envelope {
	return &Envelope{Audio: audio, Attack: 0.1, Decay: 0.3, Release: 0.5, Peak: 1}
}

// Validate checks the phase times and peak amplitude.
func (n *Envelope) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"attack", n.Attack}, {"decay", n.Decay}, {"release", n.Release}} {
		if p.v < 0 {
			return graph.ValidatePositiveFloat(p.name, p.v)
		}
	}
	return graph.ValidateFloatRange("peak_amplitude", n.Peak, 0, 1)
}

// Process applies the gain curve frame by frame and re-encodes the clip.
func (n *Envelope) Process(ctx context.Context, ec graph.Context) (graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return graph.AudioRef{}, err
	}
	if n.Audio.IsEmpty() {
		return graph.AudioRef{}, graph.ErrEmptyAudio
	}
	clip, err := ec.DecodeAudio(ctx, n.Audio)
	if err != nil {
		return graph.AudioRef{}, err
	}
	gains, err := synth.EnvelopeGains(clip.Frames(), clip.SampleRate, n.Attack, n.Decay, n.Release, n.Peak)
	if err != nil {
		return graph.AudioRef{}, err
	}
	shaped := clip.Clone()
	for f, g := range gains {
		for ch := 0; ch < shaped.Channels; ch++ {
			shaped.Samples[f*shaped.Channels+ch] *= g
		}
	}
	return ec.EncodeAudio(ctx, shaped)
}
