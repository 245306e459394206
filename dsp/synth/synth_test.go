package synth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audionodes/dsp/stft"
)

func TestParseWaveformRoundTrip(t *testing.T) {
	for _, name := range WaveformNames() {
		w, err := ParseWaveform(name)
		if err != nil {
			t.Fatalf("ParseWaveform(%q) failed: %v", name, err)
		}
		if got := w.String(); got != name {
			t.Fatalf("waveform %q round-tripped to %q", name, got)
		}
	}
}

func TestParseWaveformUnknown(t *testing.T) {
	if _, err := ParseWaveform("saw"); err == nil {
		t.Fatal("expected error for unknown waveform name")
	}
}

func TestParsePitchCurveRoundTrip(t *testing.T) {
	for _, name := range PitchCurveNames() {
		c, err := ParsePitchCurve(name)
		if err != nil {
			t.Fatalf("ParsePitchCurve(%q) failed: %v", name, err)
		}
		switch name {
		case "linear":
			if c != CurveLinear {
				t.Fatalf("expected CurveLinear for %q, got %v", name, c)
			}
		case "exponential":
			if c != CurveExponential {
				t.Fatalf("expected CurveExponential for %q, got %v", name, c)
			}
		}
	}
	if _, err := ParsePitchCurve("log"); err == nil {
		t.Fatal("expected error for unknown pitch curve name")
	}
}

func TestOscillatorLengthAndBounds(t *testing.T) {
	for _, w := range []Waveform{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		out, err := Oscillator(w, 440, 0.5, 1, 44100, nil)
		if err != nil {
			t.Fatalf("Oscillator(%v) failed: %v", w, err)
		}
		if len(out) != 44100 {
			t.Fatalf("waveform %v: expected 44100 samples, got %d", w, len(out))
		}
		for i, v := range out {
			if math.Abs(v) > 0.5+1e-12 {
				t.Fatalf("waveform %v: sample %d exceeds amplitude: %g", w, i, v)
			}
		}
	}
}

func TestOscillatorValidation(t *testing.T) {
	cases := []struct {
		name       string
		freq       float64
		duration   float64
		sampleRate int
	}{
		{"zero frequency", 0, 1, 44100},
		{"negative duration", 440, -1, 44100},
		{"zero sample rate", 440, 1, 0},
	}
	for _, tc := range cases {
		if _, err := Oscillator(WaveSine, tc.freq, 0.5, tc.duration, tc.sampleRate, nil); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestOscillatorPitchEnvelopeSettles(t *testing.T) {
	env := &PitchEnvelope{Semitones: 12, Seconds: 0.25, Curve: CurveLinear}
	out, err := Oscillator(WaveSine, 100, 1, 1, 8000, env)
	if err != nil {
		t.Fatalf("Oscillator with pitch envelope failed: %v", err)
	}
	base, err := Oscillator(WaveSine, 100, 1, 1, 8000, nil)
	if err != nil {
		t.Fatalf("Oscillator failed: %v", err)
	}
	if len(out) != len(base) {
		t.Fatalf("pitch envelope changed length: %d != %d", len(out), len(base))
	}
	// During the glide the instantaneous frequency differs from the base.
	same := true
	for i := 0; i < 2000; i++ {
		if math.Abs(out[i]-base[i]) > 1e-9 {
			same = false
			break
		}
	}
	if same {
		t.Fatal("pitch envelope had no effect during the glide")
	}
}

func TestWhiteNoiseDeterministicBySeed(t *testing.T) {
	a, err := WhiteNoise(0.8, 0.1, 22050, 7)
	if err != nil {
		t.Fatalf("WhiteNoise failed: %v", err)
	}
	b, err := WhiteNoise(0.8, 0.1, 22050, 7)
	if err != nil {
		t.Fatalf("WhiteNoise failed: %v", err)
	}
	if len(a) != 2205 {
		t.Fatalf("expected 2205 samples, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different samples at %d", i)
		}
		if math.Abs(a[i]) > 0.8 {
			t.Fatalf("sample %d exceeds amplitude: %g", i, a[i])
		}
	}
	c, err := WhiteNoise(0.8, 0.1, 22050, 8)
	if err != nil {
		t.Fatalf("WhiteNoise failed: %v", err)
	}
	diff := false
	for i := range a {
		if a[i] != c[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestPinkNoisePeakNormalized(t *testing.T) {
	out, err := PinkNoise(0.5, 0.5, 22050, 3)
	if err != nil {
		t.Fatalf("PinkNoise failed: %v", err)
	}
	peak := 0.0
	for _, v := range out {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-0.5) > 1e-9 {
		t.Fatalf("expected peak 0.5, got %g", peak)
	}
}

func TestNoiseValidation(t *testing.T) {
	if _, err := WhiteNoise(-0.1, 1, 44100, 0); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
	if _, err := PinkNoise(0.5, 0, 44100, 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestFMLengthAndBounds(t *testing.T) {
	out, err := FM(440, 110, 5, 0.5, 1, 44100)
	if err != nil {
		t.Fatalf("FM failed: %v", err)
	}
	if len(out) != 44100 {
		t.Fatalf("expected 44100 samples, got %d", len(out))
	}
	for i, v := range out {
		if math.Abs(v) > 0.5 {
			t.Fatalf("sample %d exceeds amplitude: %g", i, v)
		}
	}
}

func TestFMValidation(t *testing.T) {
	if _, err := FM(0, 110, 5, 0.5, 1, 44100); err == nil {
		t.Fatal("expected error for zero carrier frequency")
	}
	if _, err := FM(440, -1, 5, 0.5, 1, 44100); err == nil {
		t.Fatal("expected error for negative modulator frequency")
	}
}

func TestPinkNoiseSpectrumFallsWithFrequency(t *testing.T) {
	out, err := PinkNoise(0.5, 2, 22050, 7)
	if err != nil {
		t.Fatalf("PinkNoise failed: %v", err)
	}
	a, err := stft.New(2048, 512)
	if err != nil {
		t.Fatalf("stft.New failed: %v", err)
	}
	spec, err := a.Transform(out)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	power := stft.PowerFrames(spec)
	low, high := 0.0, 0.0
	lowBins, highBins := 0, 0
	for _, frame := range power {
		for b := 1; b < 32; b++ {
			low += frame[b]
			lowBins++
		}
		for b := 512; b < len(frame); b++ {
			high += frame[b]
			highBins++
		}
	}
	low /= float64(lowBins)
	high /= float64(highBins)
	if low < 4*high {
		t.Fatalf("expected low-band power to dominate: low=%g high=%g", low, high)
	}
}
