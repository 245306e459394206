package analysis

import (
	"github.com/cwbudde/algo-audionodes/dsp/window"
	"github.com/cwbudde/algo-audionodes/graph"
)

func framingProps() []graph.Property {
	return []graph.Property{
		{Name: "audio", Kind: graph.KindAudio, Description: "The audio to analyze."},
		{Name: "n_fft", Kind: graph.KindInt, Description: "Samples per frame.", Default: DefaultFFTSize, Min: graph.Bound(MinFFTSize), Max: graph.Bound(MaxFFTSize)},
		{Name: "hop_length", Kind: graph.KindInt, Description: "Samples between frames.", Default: DefaultHopLength, Min: graph.Bound(MinHopLength), Max: graph.Bound(MaxHopLength)},
		{Name: "window", Kind: graph.KindEnum, Description: "Analysis window type.", Default: window.TypeHann.String(), Values: window.Names()},
		{Name: "center", Kind: graph.KindBool, Description: "Center frames on their timestamps.", Default: true},
	}
}

func withProps(base []graph.Property, extra ...graph.Property) []graph.Property {
	return append(append([]graph.Property{}, base...), extra...)
}

func init() {
	graph.Register(graph.Spec{
		Type:       "audio.analysis.STFT",
		Title:      "STFT",
		Doc:        "Short-time Fourier transform magnitude spectrogram.",
		Properties: framingProps(),
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.MelSpectrogram",
		Title: "Mel Spectrogram",
		Doc:   "Power spectrogram projected onto a mel filterbank.",
		Properties: withProps(framingProps(),
			graph.Property{Name: "n_mels", Kind: graph.KindInt, Description: "Number of mel bands.", Default: 128, Min: graph.Bound(1)},
			graph.Property{Name: "fmin", Kind: graph.KindFloat, Description: "Lowest frequency in Hz.", Default: 0.0, Min: graph.Bound(0)},
			graph.Property{Name: "fmax", Kind: graph.KindFloat, Description: "Highest frequency in Hz.", Default: 8000.0, Min: graph.Bound(0)},
		),
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.MFCC",
		Title: "MFCC",
		Doc:   "Mel-frequency cepstral coefficients.",
		Properties: withProps(framingProps(),
			graph.Property{Name: "n_mfcc", Kind: graph.KindInt, Description: "Number of coefficients.", Default: 13, Min: graph.Bound(1)},
			graph.Property{Name: "n_mels", Kind: graph.KindInt, Description: "Number of mel bands.", Default: 128, Min: graph.Bound(1)},
			graph.Property{Name: "fmin", Kind: graph.KindFloat, Description: "Lowest frequency in Hz.", Default: 0.0, Min: graph.Bound(0)},
			graph.Property{Name: "fmax", Kind: graph.KindFloat, Description: "Highest frequency in Hz.", Default: 8000.0, Min: graph.Bound(0)},
		),
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:       "audio.analysis.ChromaSTFT",
		Title:      "Chroma STFT",
		Doc:        "Pitch-class energy chromagram.",
		Properties: framingProps(),
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.SpectralContrast",
		Title: "Spectral Contrast",
		Doc:   "Peak-to-valley energy difference per octave band.",
		Properties: withProps(framingProps(),
			graph.Property{Name: "n_bands", Kind: graph.KindInt, Description: "Number of octave bands.", Default: 6, Min: graph.Bound(1), Max: graph.Bound(12)},
			graph.Property{Name: "fmin", Kind: graph.KindFloat, Description: "Lowest band edge in Hz.", Default: 200.0, Min: graph.Bound(0)},
		),
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:       "audio.analysis.SpectralCentroid",
		Title:      "Spectral Centroid",
		Doc:        "Magnitude-weighted mean frequency per frame.",
		Properties: framingProps(),
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.AmplitudeToDB",
		Title: "Amplitude To dB",
		Doc:   "Convert an amplitude spectrogram to decibels.",
		Properties: []graph.Property{
			{Name: "array", Kind: graph.KindArray, Description: "The amplitude array to convert."},
			{Name: "reference", Kind: graph.KindEnum, Description: "0 dB reference point.", Default: RefMax, Values: ReferenceNames()},
			{Name: "top_db", Kind: graph.KindFloat, Description: "Dynamic range limit in dB.", Default: 80.0, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.DBToAmplitude",
		Title: "dB To Amplitude",
		Doc:   "Invert a decibel array to linear amplitude.",
		Properties: []graph.Property{
			{Name: "array", Kind: graph.KindArray, Description: "The decibel array to invert."},
		},
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.PowerToDB",
		Title: "Power To dB",
		Doc:   "Convert a power spectrogram to decibels.",
		Properties: []graph.Property{
			{Name: "array", Kind: graph.KindArray, Description: "The power array to convert."},
			{Name: "reference", Kind: graph.KindEnum, Description: "0 dB reference point.", Default: RefMax, Values: ReferenceNames()},
			{Name: "top_db", Kind: graph.KindFloat, Description: "Dynamic range limit in dB.", Default: 80.0, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.DBToPower",
		Title: "dB To Power",
		Doc:   "Invert a decibel array to linear power.",
		Properties: []graph.Property{
			{Name: "array", Kind: graph.KindArray, Description: "The decibel array to invert."},
		},
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.GriffinLim",
		Title: "Griffin-Lim",
		Doc:   "Reconstruct audio from a magnitude spectrogram.",
		Properties: []graph.Property{
			{Name: "magnitude_spectrogram", Kind: graph.KindArray, Description: "The magnitude spectrogram to invert."},
			{Name: "n_iter", Kind: graph.KindInt, Description: "Phase estimation iterations.", Default: 32, Min: graph.Bound(1)},
			{Name: "hop_length", Kind: graph.KindInt, Description: "Samples between frames.", Default: DefaultHopLength, Min: graph.Bound(MinHopLength), Max: graph.Bound(MaxHopLength)},
			{Name: "window", Kind: graph.KindEnum, Description: "Synthesis window type.", Default: window.TypeHann.String(), Values: window.Names()},
			{Name: "center", Kind: graph.KindBool, Description: "Frames were centered during analysis.", Default: true},
			{Name: "length", Kind: graph.KindInt, Description: "Target output length in samples (0 for natural).", Default: 0, Min: graph.Bound(0)},
			{Name: "sample_rate", Kind: graph.KindInt, Description: "Sample rate of the reconstructed audio.", Default: 44100, Min: graph.Bound(8000), Max: graph.Bound(192000)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.analysis.PlotSpectrogram",
		Title: "Plot Spectrogram",
		Doc:   "Render a spectrogram matrix as a grayscale PNG image.",
		Properties: []graph.Property{
			{Name: "array", Kind: graph.KindArray, Description: "The spectrogram matrix to render."},
		},
		OutputKind: graph.KindImage,
	})
}
