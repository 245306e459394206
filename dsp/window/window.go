// Package window generates analysis window coefficients for STFT framing.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Parse maps a window name used in node parameters to a Type.
func Parse(name string) (Type, error) {
	switch name {
	case "rectangular", "boxcar":
		return TypeRectangular, nil
	case "hann":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	default:
		return 0, fmt.Errorf("unknown window type: %q", name)
	}
}

// String returns the canonical parameter name of the window type.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("window.Type(%d)", int(t))
	}
}

// Names lists the window names accepted by Parse, in declaration order.
func Names() []string {
	return []string{"rectangular", "hann", "hamming", "blackman"}
}

// Generate returns size coefficients of the window in periodic form, the
// form used for FFT framing.
func Generate(t Type, size int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be > 0: %d", size)
	}
	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}
	n := float64(size)
	for i := range out {
		x := float64(i) / n
		switch t {
		case TypeRectangular:
			out[i] = 1
		case TypeHann:
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case TypeHamming:
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*x)
		case TypeBlackman:
			out[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
		default:
			return nil, fmt.Errorf("unknown window type: %d", int(t))
		}
	}
	return out, nil
}

// Apply multiplies samples by coeffs element-wise into dst. All slices must
// share the same length.
func Apply(dst, samples, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(dst) != len(samples) {
		return fmt.Errorf("window apply length mismatch: dst=%d samples=%d coeffs=%d",
			len(dst), len(samples), len(coeffs))
	}
	vecmath.MulBlock(dst, samples, coeffs)
	return nil
}
