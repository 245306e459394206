package synthesis

import (
	"github.com/cwbudde/algo-audionodes/dsp/synth"
	"github.com/cwbudde/algo-audionodes/graph"
)

func generatorProps() []graph.Property {
	return []graph.Property{
		{Name: "amplitude", Kind: graph.KindFloat, Description: "Output amplitude.", Default: 0.5, Min: graph.Bound(0), Max: graph.Bound(1)},
		{Name: "duration", Kind: graph.KindFloat, Description: "Duration in seconds.", Default: 1.0, Min: graph.Bound(0)},
		{Name: "sample_rate", Kind: graph.KindInt, Description: "Sampling rate in Hz.", Default: 44100, Min: graph.Bound(MinSampleRate), Max: graph.Bound(MaxSampleRate)},
	}
}

func init() {
	graph.Register(graph.Spec{
		Type:  "audio.synthesis.Oscillator",
		Title: "Oscillator",
		Doc:   "Generate a periodic waveform with an optional pitch glide.",
		Properties: append([]graph.Property{
			{Name: "waveform", Kind: graph.KindEnum, Description: "Waveform shape.", Default: synth.WaveSine.String(), Values: synth.WaveformNames()},
			{Name: "frequency", Kind: graph.KindFloat, Description: "Frequency in Hz.", Default: 440.0, Min: graph.Bound(0)},
		}, append(generatorProps(),
			graph.Property{Name: "pitch_envelope_amount", Kind: graph.KindFloat, Description: "Pitch envelope in semitones.", Default: 0.0},
			graph.Property{Name: "pitch_envelope_time", Kind: graph.KindFloat, Description: "Pitch envelope time in seconds.", Default: 0.5, Min: graph.Bound(0)},
			graph.Property{Name: "pitch_envelope_curve", Kind: graph.KindEnum, Description: "Pitch envelope curve.", Default: synth.CurveLinear.String(), Values: synth.PitchCurveNames()},
		)...),
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:       "audio.synthesis.WhiteNoise",
		Title:      "White Noise",
		Doc:        "Generate uniform spectral-density noise.",
		Properties: generatorProps(),
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:       "audio.synthesis.PinkNoise",
		Title:      "Pink Noise",
		Doc:        "Generate 1/f noise.",
		Properties: generatorProps(),
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.synthesis.FMSynthesis",
		Title: "FM Synthesis",
		Doc:   "Frequency-modulated tone.",
		Properties: append([]graph.Property{
			{Name: "carrier_frequency", Kind: graph.KindFloat, Description: "Carrier frequency in Hz.", Default: 440.0, Min: graph.Bound(0)},
			{Name: "modulator_frequency", Kind: graph.KindFloat, Description: "Modulator frequency in Hz.", Default: 110.0, Min: graph.Bound(0)},
			{Name: "modulation_index", Kind: graph.KindFloat, Description: "Modulation index.", Default: 5.0, Min: graph.Bound(0)},
		}, generatorProps()...),
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.synthesis.Envelope",
		Title: "Envelope",
		Doc:   "Shape audio with an attack-decay-release gain curve.",
		Properties: []graph.Property{
			{Name: "audio", Kind: graph.KindAudio, Description: "The audio to shape."},
			{Name: "attack", Kind: graph.KindFloat, Description: "Attack time in seconds.", Default: 0.1, Min: graph.Bound(0)},
			{Name: "decay", Kind: graph.KindFloat, Description: "Decay time in seconds.", Default: 0.3, Min: graph.Bound(0)},
			{Name: "release", Kind: graph.KindFloat, Description: "Release time in seconds.", Default: 0.5, Min: graph.Bound(0)},
			{Name: "peak_amplitude", Kind: graph.KindFloat, Description: "Peak amplitude after the attack.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(1)},
		},
		OutputKind: graph.KindAudio,
	})
}
