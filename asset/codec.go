package asset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dhowden/tag"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/cwbudde/algo-audionodes/graph"
)

// ErrUnknownFormat reports that a blob matched none of the supported
// container signatures.
var ErrUnknownFormat = errors.New("unrecognized audio format")

// Format identifies a supported audio container.
type Format int

// Supported containers.
const (
	FormatUnknown Format = iota
	FormatWAV
	FormatAIFF
	FormatOGG
	FormatMP3
)

// String returns the lowercase container name.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatAIFF:
		return "aiff"
	case FormatOGG:
		return "ogg"
	case FormatMP3:
		return "mp3"
	default:
		return "unknown"
	}
}

// DetectFormat sniffs the container from leading magic bytes, falling back
// to tag identification for headerless formats such as MP3.
func DetectFormat(data []byte) Format {
	if len(data) >= 4 {
		switch {
		case bytes.Equal(data[:4], []byte("RIFF")):
			return FormatWAV
		case bytes.Equal(data[:4], []byte("FORM")):
			return FormatAIFF
		case bytes.Equal(data[:4], []byte("OggS")):
			return FormatOGG
		}
	}
	_, fileType, err := tag.Identify(bytes.NewReader(data))
	if err == nil && fileType == tag.MP3 {
		return FormatMP3
	}
	// ID3-less MP3 frames start with an 11-bit sync word.
	if len(data) >= 2 && data[0] == 0xff && data[1]&0xe0 == 0xe0 {
		return FormatMP3
	}
	return FormatUnknown
}

// Decode sniffs the container and decodes data into a clip.
func Decode(data []byte) (*graph.Clip, error) {
	switch DetectFormat(data) {
	case FormatWAV:
		return decodeWAV(data)
	case FormatAIFF:
		return decodeAIFF(data)
	case FormatOGG:
		return decodeOGG(data)
	case FormatMP3:
		return decodeMP3(data)
	default:
		return nil, ErrUnknownFormat
	}
}

func decodeWAV(data []byte) (*graph.Clip, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, fmt.Errorf("decoding wav: invalid file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("decoding wav: missing format chunk")
	}
	return intBufferToClip(buf, int(d.BitDepth))
}

func decodeAIFF(data []byte) (*graph.Clip, error) {
	d := aiff.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, fmt.Errorf("decoding aiff: invalid file")
	}
	d.ReadInfo()
	format := d.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("decoding aiff: missing common chunk")
	}

	scale := bitDepthScale(int(d.BitDepth))
	var samples []float64
	buf := &audio.IntBuffer{Data: make([]int, 4096), Format: format}
	for {
		n, err := d.PCMBuffer(buf)
		if n == 0 {
			break
		}
		for _, v := range buf.Data[:n] {
			samples = append(samples, float64(v)/scale)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding aiff: %w", err)
		}
	}
	return &graph.Clip{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
	}, nil
}

func decodeOGG(data []byte) (*graph.Clip, error) {
	pcm, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding ogg: %w", err)
	}
	samples := make([]float64, len(pcm))
	for i, v := range pcm {
		samples[i] = float64(v)
	}
	return &graph.Clip{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}, nil
}

func decodeMP3(data []byte) (*graph.Clip, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}
	// The decoder always emits 16-bit little-endian stereo.
	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}
	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = float64(v) / 32768
	}
	return &graph.Clip{
		Samples:    samples,
		SampleRate: d.SampleRate(),
		Channels:   2,
	}, nil
}

func intBufferToClip(buf *audio.IntBuffer, bitDepth int) (*graph.Clip, error) {
	scale := bitDepthScale(bitDepth)
	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}
	return &graph.Clip{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}

func bitDepthScale(bitDepth int) float64 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1))
	default:
		return 32768
	}
}

// EncodeWAV encodes clip as a 16-bit PCM WAV file.
func EncodeWAV(clip *graph.Clip) ([]byte, error) {
	if clip == nil || len(clip.Samples) == 0 {
		return nil, graph.ErrEmptyAudio
	}

	ws := &memWriteSeeker{}
	enc := wav.NewEncoder(ws, clip.SampleRate, 16, clip.Channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: clip.Channels,
			SampleRate:  clip.SampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(clip.Samples)),
	}
	for i, v := range clip.Samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		buf.Data[i] = int(v * 32767)
	}
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}
	return ws.buf, nil
}

// memWriteSeeker adapts a byte slice to io.WriteSeeker so the WAV encoder
// can rewrite chunk sizes on Close.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	if need := m.pos + len(p); need > len(m.buf) {
		grown := make([]byte, need)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:], p)
	m.pos += len(p)
	return len(p), nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(m.pos) + offset
	case io.SeekEnd:
		pos = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position: %d", pos)
	}
	m.pos = int(pos)
	return pos, nil
}
