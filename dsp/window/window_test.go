package window

import (
	"math"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for _, name := range Names() {
		typ, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if typ.String() != name {
			t.Fatalf("String() = %q, want %q", typ.String(), name)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("kaiser-bessel"); err == nil {
		t.Fatalf("expected error for unknown window name")
	}
}

func TestGenerateHannEndpoints(t *testing.T) {
	w, err := Generate(TypeHann, 8)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(w) != 8 {
		t.Fatalf("len = %d, want 8", len(w))
	}
	// Periodic form: first coefficient is zero, none exceed one.
	if w[0] != 0 {
		t.Fatalf("w[0] = %v, want 0", w[0])
	}
	for i, v := range w {
		if v < 0 || v > 1 {
			t.Fatalf("coefficient %d out of range: %v", i, v)
		}
	}
}

func TestGenerateRectangular(t *testing.T) {
	w, err := Generate(TypeRectangular, 16)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("coefficient %d = %v, want 1", i, v)
		}
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	if _, err := Generate(TypeHann, 0); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestApply(t *testing.T) {
	coeffs, err := Generate(TypeHamming, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	samples := []float64{1, 1, 1, 1}
	dst := make([]float64, 4)
	if err := Apply(dst, samples, coeffs); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i := range dst {
		if math.Abs(dst[i]-coeffs[i]) > 1e-15 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], coeffs[i])
		}
	}
}

func TestApplyLengthMismatch(t *testing.T) {
	if err := Apply(make([]float64, 4), make([]float64, 4), make([]float64, 3)); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}
