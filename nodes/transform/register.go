package transform

import (
	"github.com/cwbudde/algo-audionodes/dsp/clip"
	"github.com/cwbudde/algo-audionodes/graph"
)

func audioProp(name, desc string) graph.Property {
	return graph.Property{Name: name, Kind: graph.KindAudio, Description: desc}
}

func init() {
	graph.Register(graph.Spec{
		Type:  "audio.transform.Concat",
		Title: "Concat",
		Doc:   "Append one audio clip after another.",
		Properties: []graph.Property{
			audioProp("a", "First audio."),
			audioProp("b", "Second audio."),
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.ConcatList",
		Title: "Concat List",
		Doc:   "Join a list of audio clips in order.",
		Properties: []graph.Property{
			{Name: "audio_files", Kind: graph.KindList, Description: "Clips to join, in order."},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.Normalize",
		Title: "Normalize",
		Doc:   "Scale audio so its peak sits just below full scale.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to normalize."),
			{Name: "headroom", Kind: graph.KindFloat, Description: "Peak headroom in dB.", Default: 0.1, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.OverlayAudio",
		Title: "Overlay Audio",
		Doc:   "Mix one clip on top of another.",
		Properties: []graph.Property{
			audioProp("a", "Base audio."),
			audioProp("b", "Audio mixed on top."),
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.RemoveSilence",
		Title: "Remove Silence",
		Doc:   "Shorten or remove silent stretches.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to trim."),
			{Name: "min_length", Kind: graph.KindInt, Description: "Minimum length in ms of a non-silent part to keep.", Default: 100, Min: graph.Bound(1)},
			{Name: "threshold", Kind: graph.KindFloat, Description: "Silence threshold in dBFS.", Default: -32.0, Min: graph.Bound(-120), Max: graph.Bound(0)},
			{Name: "reduction_factor", Kind: graph.KindFloat, Description: "Fraction of each silence to remove.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(1)},
			{Name: "crossfade", Kind: graph.KindInt, Description: "Crossfade at joins in ms.", Default: 10, Min: graph.Bound(0)},
			{Name: "min_silence_between_parts", Kind: graph.KindInt, Description: "Minimum gap eligible for reduction in ms.", Default: 100, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.SliceAudio",
		Title: "Slice Audio",
		Doc:   "Extract a time range in seconds.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to slice."),
			{Name: "start", Kind: graph.KindFloat, Description: "Start time in seconds.", Default: 0.0, Min: graph.Bound(0)},
			{Name: "end", Kind: graph.KindFloat, Description: "End time in seconds (0 for end of audio).", Default: 0.0},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.Tone",
		Title: "Tone",
		Doc:   "Render a pure sine as a numeric array.",
		Properties: []graph.Property{
			{Name: "frequency", Kind: graph.KindFloat, Description: "Frequency in Hz.", Default: 440.0, Min: graph.Bound(0)},
			{Name: "sampling_rate", Kind: graph.KindInt, Description: "Sampling rate in Hz.", Default: 44100, Min: graph.Bound(1)},
			{Name: "duration", Kind: graph.KindFloat, Description: "Duration in seconds.", Default: 1.0, Min: graph.Bound(0)},
			{Name: "phi", Kind: graph.KindFloat, Description: "Initial phase in radians.", Default: 0.0},
		},
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.MonoToStereo",
		Title: "Mono To Stereo",
		Doc:   "Duplicate a mono channel into two.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to convert."),
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.StereoToMono",
		Title: "Stereo To Mono",
		Doc:   "Collapse stereo to a single channel.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to convert."),
			{Name: "method", Kind: graph.KindEnum, Description: "Channel reduction method.", Default: clip.MixAverage.String(), Values: clip.MixMethodNames()},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.Reverse",
		Title: "Reverse",
		Doc:   "Play audio backwards.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to reverse."),
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.FadeIn",
		Title: "Fade In",
		Doc:   "Ramp the gain up from silence.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to fade."),
			{Name: "duration", Kind: graph.KindFloat, Description: "Ramp length in seconds.", Default: 1.0, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.FadeOut",
		Title: "Fade Out",
		Doc:   "Ramp the gain down to silence.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to fade."),
			{Name: "duration", Kind: graph.KindFloat, Description: "Ramp length in seconds.", Default: 1.0, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.Repeat",
		Title: "Repeat",
		Doc:   "Loop audio a fixed number of times.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to loop."),
			{Name: "loops", Kind: graph.KindInt, Description: "Number of repetitions.", Default: 2, Min: graph.Bound(1)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.AudioMixer",
		Title: "Audio Mixer",
		Doc:   "Sum up to five tracks with per-track gain.",
		Properties: []graph.Property{
			audioProp("track1", "First track."),
			audioProp("track2", "Second track."),
			audioProp("track3", "Third track."),
			audioProp("track4", "Fourth track."),
			audioProp("track5", "Fifth track."),
			{Name: "gain1", Kind: graph.KindFloat, Description: "Gain for track 1.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(2)},
			{Name: "gain2", Kind: graph.KindFloat, Description: "Gain for track 2.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(2)},
			{Name: "gain3", Kind: graph.KindFloat, Description: "Gain for track 3.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(2)},
			{Name: "gain4", Kind: graph.KindFloat, Description: "Gain for track 4.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(2)},
			{Name: "gain5", Kind: graph.KindFloat, Description: "Gain for track 5.", Default: 1.0, Min: graph.Bound(0), Max: graph.Bound(2)},
		},
		OutputKind: graph.KindAudio,
	})
	graph.Register(graph.Spec{
		Type:  "audio.transform.Resample",
		Title: "Resample",
		Doc:   "Convert audio to a new sample rate.",
		Properties: []graph.Property{
			audioProp("audio", "The audio to convert."),
			{Name: "sample_rate", Kind: graph.KindInt, Description: "Target sample rate in Hz.", Default: 44100, Min: graph.Bound(8000), Max: graph.Bound(192000)},
		},
		OutputKind: graph.KindAudio,
	})
}
