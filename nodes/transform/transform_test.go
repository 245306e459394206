package transform_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-audionodes/graph"
	"github.com/cwbudde/algo-audionodes/internal/nodetest"
	"github.com/cwbudde/algo-audionodes/nodes/transform"
)

func TestConcat(t *testing.T) {
	ec := nodetest.Context()
	a := nodetest.ToneClip(440, 0.25, 22050)
	b := nodetest.ToneClip(880, 0.5, 22050)
	refA := nodetest.EncodeRef(t, ec, a)
	refB := nodetest.EncodeRef(t, ec, b)

	out, err := transform.NewConcat(refA, refB).Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if clip.Frames() != a.Frames()+b.Frames() {
		t.Fatalf("expected %d frames, got %d", a.Frames()+b.Frames(), clip.Frames())
	}

	if _, err := transform.NewConcat(graph.AudioRef{}, refB).Process(context.Background(), ec); !errors.Is(err, graph.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
}

func TestConcatRateMismatch(t *testing.T) {
	ec := nodetest.Context()
	refA := nodetest.EncodeRef(t, ec, nodetest.ToneClip(440, 0.1, 22050))
	refB := nodetest.EncodeRef(t, ec, nodetest.ToneClip(440, 0.1, 44100))

	if _, err := transform.NewConcat(refA, refB).Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for mismatched sample rates")
	}
}

func TestConcatList(t *testing.T) {
	ec := nodetest.Context()
	one := nodetest.EncodeRef(t, ec, nodetest.ToneClip(440, 0.2, 22050))
	two := nodetest.EncodeRef(t, ec, nodetest.ToneClip(550, 0.3, 22050))
	three := nodetest.EncodeRef(t, ec, nodetest.ToneClip(660, 0.1, 22050))

	out, err := transform.NewConcatList(one, two, three).Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	want := int(0.2*22050) + int(0.3*22050) + int(0.1*22050)
	if clip.Frames() != want {
		t.Fatalf("expected %d frames, got %d", want, clip.Frames())
	}

	// A single input passes through untouched.
	out, err = transform.NewConcatList(one).Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("single input failed: %v", err)
	}
	if out.AssetID != one.AssetID {
		t.Fatal("single input should pass through unchanged")
	}

	// No inputs yield an empty reference.
	out, err = transform.NewConcatList().Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("empty input failed: %v", err)
	}
	if !out.IsEmpty() {
		t.Fatalf("expected empty reference, got %+v", out)
	}
}

func TestNormalize(t *testing.T) {
	ec := nodetest.Context()
	quiet := nodetest.ToneClip(440, 0.25, 22050)
	for i := range quiet.Samples {
		quiet.Samples[i] *= 0.1
	}
	ref := nodetest.EncodeRef(t, ec, quiet)

	n := transform.NewNormalize(ref)
	out, err := n.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	peak := 0.0
	for _, v := range clip.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	// Default headroom is 0.1 dB below full scale.
	want := math.Pow(10, -0.1/20)
	if math.Abs(peak-want) > 0.01 {
		t.Fatalf("peak %g, want about %g", peak, want)
	}

	n.Headroom = -1
	if _, err := n.Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for negative headroom")
	}
}

func TestOverlayAudio(t *testing.T) {
	ec := nodetest.Context()
	a := nodetest.ToneClip(440, 0.25, 22050)
	b := nodetest.ToneClip(880, 0.5, 22050)
	refA := nodetest.EncodeRef(t, ec, a)
	refB := nodetest.EncodeRef(t, ec, b)

	out, err := transform.NewOverlayAudio(refA, refB).Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if clip.Frames() != b.Frames() {
		t.Fatalf("overlay must keep the longer length %d, got %d", b.Frames(), clip.Frames())
	}
}

func TestSliceAudio(t *testing.T) {
	ec := nodetest.Context()
	const rate = 22050
	ref := nodetest.EncodeRef(t, ec, nodetest.ToneClip(440, 1, rate))

	out, err := transform.NewSliceAudio(ref, 0.25, 0.75).Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	endF, startF := 0.75*rate, 0.25*rate
	want := int(endF) - int(startF)
	if clip.Frames() != want {
		t.Fatalf("expected %d frames, got %d", want, clip.Frames())
	}

	if _, err := transform.NewSliceAudio(ref, 0.75, 0.25).Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for end before start")
	}
	if _, err := transform.NewSliceAudio(ref, -1, 0).Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for negative start")
	}
}

func TestReverse(t *testing.T) {
	ec := nodetest.Context()
	in := nodetest.ToneClip(440, 0.1, 22050)
	ref := nodetest.EncodeRef(t, ec, in)

	out, err := transform.NewReverse(ref).Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if clip.Frames() != in.Frames() {
		t.Fatalf("reverse changed length: %d != %d", clip.Frames(), in.Frames())
	}
	// The first output frame carries the last input frame, within
	// quantization error.
	if math.Abs(clip.Samples[0]-in.Samples[in.Frames()-1]) > 1e-3 {
		t.Fatalf("frame order not reversed: got %g, want %g", clip.Samples[0], in.Samples[in.Frames()-1])
	}
}

func TestFades(t *testing.T) {
	ec := nodetest.Context()
	const rate = 22050
	loud := nodetest.SilentClip(1, rate)
	for i := range loud.Samples {
		loud.Samples[i] = 0.9
	}
	ref := nodetest.EncodeRef(t, ec, loud)

	in := transform.NewFadeIn(ref)
	in.Duration = 0.5
	out, err := in.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("FadeIn failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if math.Abs(clip.Samples[0]) > 1e-3 {
		t.Fatalf("fade-in must start at silence, got %g", clip.Samples[0])
	}
	if math.Abs(clip.Samples[clip.Frames()-1]-0.9) > 1e-3 {
		t.Fatalf("fade-in must not touch the tail, got %g", clip.Samples[clip.Frames()-1])
	}

	fo := transform.NewFadeOut(ref)
	fo.Duration = 0.5
	out, err = fo.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("FadeOut failed: %v", err)
	}
	clip = nodetest.DecodeRef(t, ec, out)
	if math.Abs(clip.Samples[0]-0.9) > 1e-3 {
		t.Fatalf("fade-out must not touch the head, got %g", clip.Samples[0])
	}
	if math.Abs(clip.Samples[clip.Frames()-1]) > 1e-2 {
		t.Fatalf("fade-out must end near silence, got %g", clip.Samples[clip.Frames()-1])
	}

	bad := transform.NewFadeIn(ref)
	bad.Duration = -1
	if _, err := bad.Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestRepeat(t *testing.T) {
	ec := nodetest.Context()
	in := nodetest.ToneClip(440, 0.1, 22050)
	ref := nodetest.EncodeRef(t, ec, in)

	n := transform.NewRepeat(ref)
	n.Loops = 3
	out, err := n.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if clip.Frames() != in.Frames()*3 {
		t.Fatalf("expected %d frames, got %d", in.Frames()*3, clip.Frames())
	}

	n.Loops = 0
	if _, err := n.Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for zero loops")
	}
}

func TestTone(t *testing.T) {
	ec := nodetest.Context()
	n := transform.NewTone()
	n.Duration = 0.5
	out, err := n.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(out.Shape) != 1 || out.Shape[0] != 22050 {
		t.Fatalf("expected 22050 samples, got shape %v", out.Shape)
	}
	if out.Data[0] != 0 {
		t.Fatalf("sine with zero phase must start at 0, got %g", out.Data[0])
	}

	shifted := transform.NewTone()
	shifted.Duration = 0.5
	shifted.Phi = math.Pi / 2
	out, err = shifted.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if math.Abs(out.Data[0]-1) > 1e-12 {
		t.Fatalf("pi/2 phase must start at 1, got %g", out.Data[0])
	}

	bad := transform.NewTone()
	bad.Frequency = -1
	if _, err := bad.Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for negative frequency")
	}
}

func TestResample(t *testing.T) {
	ec := nodetest.Context()
	in := nodetest.ToneClip(440, 1, 44100)
	ref := nodetest.EncodeRef(t, ec, in)

	n := transform.NewResample(ref)
	n.SampleRate = 22050
	out, err := n.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if clip.SampleRate != 22050 {
		t.Fatalf("expected 22050 Hz, got %d", clip.SampleRate)
	}
	if diff := clip.Frames() - in.Frames()/2; diff < -1 || diff > 1 {
		t.Fatalf("expected about %d frames, got %d", in.Frames()/2, clip.Frames())
	}

	n.SampleRate = 1000
	if _, err := n.Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for sample rate below the minimum")
	}
}

func TestRemoveSilence(t *testing.T) {
	ec := nodetest.Context()
	const rate = 22050
	// 500 ms of tone, 500 ms of silence, 500 ms of tone.
	c := nodetest.SilentClip(1.5, rate)
	for i := 0; i < rate/2; i++ {
		v := 0.5 * math.Sin(2*math.Pi*440*float64(i)/rate)
		c.Samples[i] = v
		c.Samples[rate+i] = v
	}
	ref := nodetest.EncodeRef(t, ec, c)

	n := transform.NewRemoveSilence(ref)
	out, err := n.Process(context.Background(), ec)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	clip := nodetest.DecodeRef(t, ec, out)
	if clip.Frames() >= c.Frames() {
		t.Fatalf("silence was not reduced: %d >= %d", clip.Frames(), c.Frames())
	}

	n.ReductionFactor = 2
	if _, err := n.Process(context.Background(), ec); err == nil {
		t.Fatal("expected error for reduction factor above 1")
	}
}

func TestRemoveSilenceMinLengthSchema(t *testing.T) {
	spec, ok := graph.Lookup("audio.transform.RemoveSilence")
	if !ok {
		t.Fatal("RemoveSilence spec not registered")
	}
	for _, p := range spec.Properties {
		if p.Name != "min_length" {
			continue
		}
		// min_length bounds the non-silent parts that survive trimming,
		// not the silent stretches.
		if !strings.Contains(p.Description, "non-silent") {
			t.Fatalf("min_length description does not state keep semantics: %q", p.Description)
		}
		return
	}
	t.Fatal("min_length property missing")
}
