// Package segmentation provides the onset-driven node catalog: onset
// detection, segmentation at onset boundaries, and batch export of the
// resulting segments.
package segmentation

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-audionodes/dsp/onset"
	"github.com/cwbudde/algo-audionodes/graph"
)

// DetectOnsets computes an onset strength envelope from the STFT and picks
// peaks, returning onset times in seconds as a 1-D array.
type DetectOnsets struct {
	Audio     graph.AudioRef `json:"audio"`
	FFTSize   int            `json:"n_fft"`
	HopLength int            `json:"hop_length"`
}

// NewDetectOnsets returns a detector with a 2048-sample FFT and 512-sample
// hop.
func NewDetectOnsets(audio graph.AudioRef) *DetectOnsets {
	return &DetectOnsets{
		Audio:     audio,
		FFTSize:   onset.DefaultFFTSize,
		HopLength: onset.DefaultHopLength,
	}
}

// Validate checks the framing parameters.
func (n *DetectOnsets) Validate() error {
	if err := graph.ValidatePowerOfTwo("n_fft", n.FFTSize, 128, 8192); err != nil {
		return err
	}
	return graph.ValidateIntRange("hop_length", n.HopLength, 64, 2048)
}

// Process decodes the audio and returns detected onset times. Near-silent
// input yields an empty array.
func (n *DetectOnsets) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	if n.Audio.IsEmpty() {
		return graph.NumericArray{}, graph.ErrEmptyAudio
	}
	clip, err := ec.DecodeAudio(ctx, n.Audio)
	if err != nil {
		return graph.NumericArray{}, err
	}
	detector, err := onset.NewDetector(clip.SampleRate,
		onset.WithFFTSize(n.FFTSize),
		onset.WithHopLength(n.HopLength))
	if err != nil {
		return graph.NumericArray{}, err
	}
	times, err := detector.Detect(clip.Mono())
	if err != nil {
		return graph.NumericArray{}, err
	}
	return graph.NewVector(times), nil
}

// SegmentAudioByOnsets slices audio at onset times and re-encodes each kept
// slice. Slices shorter than MinSegmentLength seconds are dropped.
type SegmentAudioByOnsets struct {
	Audio            graph.AudioRef     `json:"audio"`
	Onsets           graph.NumericArray `json:"onsets"`
	MinSegmentLength float64            `json:"min_segment_length"`
}

// NewSegmentAudioByOnsets returns a segmenter keeping slices of at least
// 100 ms.
func NewSegmentAudioByOnsets(audio graph.AudioRef, onsets graph.NumericArray) *SegmentAudioByOnsets {
	return &SegmentAudioByOnsets{Audio: audio, Onsets: onsets, MinSegmentLength: 0.1}
}

// Validate checks the minimum segment length.
func (n *SegmentAudioByOnsets) Validate() error {
	if n.MinSegmentLength < 0 {
		return graph.ValidatePositiveFloat("min_segment_length", n.MinSegmentLength)
	}
	return nil
}

// Process returns one audio reference per kept segment, in time order.
func (n *SegmentAudioByOnsets) Process(ctx context.Context, ec graph.Context) ([]graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if n.Audio.IsEmpty() {
		return nil, graph.ErrEmptyAudio
	}
	clip, err := ec.DecodeAudio(ctx, n.Audio)
	if err != nil {
		return nil, err
	}

	boundaries, err := onset.Boundaries(n.Onsets.Data, clip.SampleRate, clip.Frames())
	if err != nil {
		return nil, err
	}
	minFrames := int(n.MinSegmentLength * float64(clip.SampleRate))
	ranges := onset.Segments(boundaries, clip.Frames(), minFrames)

	refs := make([]graph.AudioRef, 0, len(ranges))
	for _, r := range ranges {
		segment := &graph.Clip{
			Samples:    clip.Samples[r[0]*clip.Channels : r[1]*clip.Channels],
			SampleRate: clip.SampleRate,
			Channels:   clip.Channels,
		}
		ref, err := ec.EncodeAudio(ctx, segment)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// SaveAudioSegments writes an ordered list of audio references into a
// folder as <prefix>_<index>.wav.
type SaveAudioSegments struct {
	Segments     []graph.AudioRef `json:"segments"`
	OutputFolder graph.FolderRef  `json:"output_folder"`
	NamePrefix   string           `json:"name_prefix"`
}

// NewSaveAudioSegments returns a saver with the "segment" name prefix.
func NewSaveAudioSegments(segments []graph.AudioRef, folder graph.FolderRef) *SaveAudioSegments {
	return &SaveAudioSegments{Segments: segments, OutputFolder: folder, NamePrefix: "segment"}
}

// Validate checks the name prefix and destination folder.
func (n *SaveAudioSegments) Validate() error {
	if n.NamePrefix == "" {
		return fmt.Errorf("name_prefix must not be empty")
	}
	if n.OutputFolder.IsEmpty() {
		return fmt.Errorf("output_folder must not be empty")
	}
	return nil
}

// Process saves each segment and returns references to the saved copies.
func (n *SaveAudioSegments) Process(ctx context.Context, ec graph.Context) ([]graph.AudioRef, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	saved := make([]graph.AudioRef, 0, len(n.Segments))
	for i, segment := range n.Segments {
		name := fmt.Sprintf("%s_%d.wav", n.NamePrefix, i)
		ref, err := ec.SaveAudio(ctx, segment, n.OutputFolder, name)
		if err != nil {
			return nil, fmt.Errorf("saving segment %d: %w", i, err)
		}
		saved = append(saved, ref)
	}
	return saved, nil
}

func init() {
	graph.Register(graph.Spec{
		Type:  "audio.segmentation.DetectOnsets",
		Title: "Detect Onsets",
		Doc:   "Detect onset times from a spectral flux envelope.",
		Properties: []graph.Property{
			{Name: "audio", Kind: graph.KindAudio, Description: "The audio to analyze."},
			{Name: "n_fft", Kind: graph.KindInt, Description: "Samples per frame.", Default: onset.DefaultFFTSize, Min: graph.Bound(128), Max: graph.Bound(8192)},
			{Name: "hop_length", Kind: graph.KindInt, Description: "Samples between frames.", Default: onset.DefaultHopLength, Min: graph.Bound(64), Max: graph.Bound(2048)},
		},
		OutputKind: graph.KindArray,
	})
	graph.Register(graph.Spec{
		Type:  "audio.segmentation.SegmentAudioByOnsets",
		Title: "Segment Audio By Onsets",
		Doc:   "Slice audio at onset boundaries.",
		Properties: []graph.Property{
			{Name: "audio", Kind: graph.KindAudio, Description: "The audio to segment."},
			{Name: "onsets", Kind: graph.KindArray, Description: "Onset times in seconds."},
			{Name: "min_segment_length", Kind: graph.KindFloat, Description: "Minimum segment length in seconds.", Default: 0.1, Min: graph.Bound(0)},
		},
		OutputKind: graph.KindList,
	})
	graph.Register(graph.Spec{
		Type:  "audio.segmentation.SaveAudioSegments",
		Title: "Save Audio Segments",
		Doc:   "Write audio segments into a folder with numbered names.",
		Properties: []graph.Property{
			{Name: "segments", Kind: graph.KindList, Description: "The segments to save."},
			{Name: "output_folder", Kind: graph.KindFolder, Description: "Destination folder."},
			{Name: "name_prefix", Kind: graph.KindString, Description: "File name prefix.", Default: "segment"},
		},
		OutputKind: graph.KindList,
	})
}
