package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAudio indicates a node received an audio reference that
	// resolves to nothing.
	ErrEmptyAudio = errors.New("audio reference is empty")

	// ErrEmptyArray indicates a node received a numeric array with no
	// elements where data is required.
	ErrEmptyArray = errors.New("numeric array is empty")
)

// ValidateIntRange checks that v lies in [lo, hi].
func ValidateIntRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be in [%d, %d]: %d", name, lo, hi, v)
	}
	return nil
}

// ValidateFloatRange checks that v lies in [lo, hi].
func ValidateFloatRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be in [%g, %g]: %g", name, lo, hi, v)
	}
	return nil
}

// ValidatePositiveFloat checks that v is strictly positive.
func ValidatePositiveFloat(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0: %g", name, v)
	}
	return nil
}

// ValidatePositiveInt checks that v is strictly positive.
func ValidatePositiveInt(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0: %d", name, v)
	}
	return nil
}

// ValidatePowerOfTwo checks that v is a power of two within [lo, hi].
// FFT plan creation requires power-of-two sizes.
func ValidatePowerOfTwo(name string, v, lo, hi int) error {
	if err := ValidateIntRange(name, v, lo, hi); err != nil {
		return err
	}
	if v&(v-1) != 0 {
		return fmt.Errorf("%s must be a power of two: %d", name, v)
	}
	return nil
}
