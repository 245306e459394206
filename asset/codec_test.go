package asset

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/cwbudde/algo-audionodes/graph"
	"github.com/cwbudde/algo-audionodes/internal/testutil"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"wav", []byte("RIFF\x00\x00\x00\x00WAVE"), FormatWAV},
		{"aiff", []byte("FORM\x00\x00\x00\x00AIFF"), FormatAIFF},
		{"ogg", []byte("OggS\x00\x00"), FormatOGG},
		{"mp3 sync word", []byte{0xff, 0xfb, 0x90, 0x00}, FormatMP3},
		{"garbage", []byte("not audio at all"), FormatUnknown},
		{"short", []byte{0x01}, FormatUnknown},
	}
	for _, tc := range cases {
		if got := DetectFormat(tc.data); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatWAV.String() != "wav" || FormatUnknown.String() != "unknown" {
		t.Fatal("unexpected format names")
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte("plain text"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestEncodeWAVDecodeRoundTrip(t *testing.T) {
	const rate = 22050
	mono := testutil.Sine(440, rate, 0.5, rate/2)
	clip := &graph.Clip{Samples: mono, SampleRate: rate, Channels: 1}

	data, err := EncodeWAV(clip)
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}
	if DetectFormat(data) != FormatWAV {
		t.Fatal("encoded data is not detected as WAV")
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.SampleRate != rate || got.Channels != 1 {
		t.Fatalf("unexpected format: rate=%d channels=%d", got.SampleRate, got.Channels)
	}
	if got.Frames() != clip.Frames() {
		t.Fatalf("frame count changed: %d != %d", got.Frames(), clip.Frames())
	}
	// 16-bit quantization bounds the round-trip error.
	for i := range mono {
		if math.Abs(got.Samples[i]-mono[i]) > 2.0/32768 {
			t.Fatalf("sample %d drifted: got %g, want %g", i, got.Samples[i], mono[i])
		}
	}
}

func TestEncodeWAVStereo(t *testing.T) {
	clip := &graph.Clip{
		Samples:    []float64{0.5, -0.5, 0.25, -0.25},
		SampleRate: 44100,
		Channels:   2,
	}
	data, err := EncodeWAV(clip)
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Channels != 2 || got.Frames() != 2 {
		t.Fatalf("unexpected stereo layout: channels=%d frames=%d", got.Channels, got.Frames())
	}
}

func TestEncodeWAVEmptyClip(t *testing.T) {
	if _, err := EncodeWAV(&graph.Clip{SampleRate: 44100, Channels: 1}); !errors.Is(err, graph.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
	if _, err := EncodeWAV(nil); !errors.Is(err, graph.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio for nil clip, got %v", err)
	}
}

func TestMemWriteSeeker(t *testing.T) {
	ws := &memWriteSeeker{}
	if _, err := ws.Write([]byte("abcdef")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if pos, err := ws.Seek(1, io.SeekStart); err != nil || pos != 1 {
		t.Fatalf("Seek failed: pos=%d err=%v", pos, err)
	}
	if _, err := ws.Write([]byte("XY")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if !bytes.Equal(ws.buf, []byte("aXYdef")) {
		t.Fatalf("unexpected buffer: %q", ws.buf)
	}
	if pos, err := ws.Seek(-2, io.SeekEnd); err != nil || pos != 4 {
		t.Fatalf("SeekEnd failed: pos=%d err=%v", pos, err)
	}
	if pos, err := ws.Seek(1, io.SeekCurrent); err != nil || pos != 5 {
		t.Fatalf("SeekCurrent failed: pos=%d err=%v", pos, err)
	}
	if _, err := ws.Seek(-10, io.SeekStart); err == nil {
		t.Fatal("expected error for negative seek")
	}
}
