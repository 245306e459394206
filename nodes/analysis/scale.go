package analysis

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-audionodes/dsp/feature"
	"github.com/cwbudde/algo-audionodes/graph"
)

// Reference selects the 0 dB point for decibel conversions: the array
// maximum, or a fixed unit reference. The unit reference makes the
// amplitude-to-dB conversion exactly invertible.
const (
	RefMax  = "max"
	RefUnit = "unit"
)

// ReferenceNames lists the accepted reference values.
func ReferenceNames() []string {
	return []string{RefMax, RefUnit}
}

func referenceValue(name string, data []float64) (float64, error) {
	switch name {
	case "", RefMax:
		return feature.MaxRef(data), nil
	case RefUnit:
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown reference %q (want %q or %q)", name, RefMax, RefUnit)
	}
}

// AmplitudeToDB converts an amplitude spectrogram to decibels.
type AmplitudeToDB struct {
	Array     graph.NumericArray `json:"array"`
	Reference string             `json:"reference"`
	TopDB     float64            `json:"top_db"`
}

// NewAmplitudeToDB returns an AmplitudeToDB node referencing the array
// maximum with an 80 dB dynamic range.
func NewAmplitudeToDB(array graph.NumericArray) *AmplitudeToDB {
	return &AmplitudeToDB{Array: array, Reference: RefMax, TopDB: feature.DefaultTopDB}
}

// Validate checks the reference name and dynamic range.
func (n *AmplitudeToDB) Validate() error {
	if _, err := referenceValue(n.Reference, nil); err != nil {
		return err
	}
	return graph.ValidatePositiveFloat("top_db", n.TopDB)
}

// Process converts the array in a new buffer; shape is preserved.
func (n *AmplitudeToDB) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	if n.Array.IsEmpty() {
		return graph.NumericArray{}, graph.ErrEmptyArray
	}
	ref, err := referenceValue(n.Reference, n.Array.Data)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return graph.NumericArray{
		Data:  feature.AmplitudeToDB(n.Array.Data, ref, n.TopDB),
		Shape: n.Array.Shape,
	}, nil
}

// DBToAmplitude inverts a decibel array back to linear amplitude against a
// unit reference.
type DBToAmplitude struct {
	Array graph.NumericArray `json:"array"`
}

// NewDBToAmplitude returns a DBToAmplitude node.
func NewDBToAmplitude(array graph.NumericArray) *DBToAmplitude {
	return &DBToAmplitude{Array: array}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *DBToAmplitude) Validate() error { return nil }

// Process converts the array in a new buffer; shape is preserved.
func (n *DBToAmplitude) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if n.Array.IsEmpty() {
		return graph.NumericArray{}, graph.ErrEmptyArray
	}
	return graph.NumericArray{
		Data:  feature.DBToAmplitude(n.Array.Data, 1),
		Shape: n.Array.Shape,
	}, nil
}

// PowerToDB converts a power spectrogram to decibels.
type PowerToDB struct {
	Array     graph.NumericArray `json:"array"`
	Reference string             `json:"reference"`
	TopDB     float64            `json:"top_db"`
}

// NewPowerToDB returns a PowerToDB node referencing the array maximum with
// an 80 dB dynamic range.
func NewPowerToDB(array graph.NumericArray) *PowerToDB {
	return &PowerToDB{Array: array, Reference: RefMax, TopDB: feature.DefaultTopDB}
}

// Validate checks the reference name and dynamic range.
func (n *PowerToDB) Validate() error {
	if _, err := referenceValue(n.Reference, nil); err != nil {
		return err
	}
	return graph.ValidatePositiveFloat("top_db", n.TopDB)
}

// Process converts the array in a new buffer; shape is preserved.
func (n *PowerToDB) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if err := n.Validate(); err != nil {
		return graph.NumericArray{}, err
	}
	if n.Array.IsEmpty() {
		return graph.NumericArray{}, graph.ErrEmptyArray
	}
	ref, err := referenceValue(n.Reference, n.Array.Data)
	if err != nil {
		return graph.NumericArray{}, err
	}
	return graph.NumericArray{
		Data:  feature.PowerToDB(n.Array.Data, ref, n.TopDB),
		Shape: n.Array.Shape,
	}, nil
}

// DBToPower inverts a decibel array back to linear power against a unit
// reference.
type DBToPower struct {
	Array graph.NumericArray `json:"array"`
}

// NewDBToPower returns a DBToPower node.
func NewDBToPower(array graph.NumericArray) *DBToPower {
	return &DBToPower{Array: array}
}

// Validate always succeeds; the node has no numeric parameters.
func (n *DBToPower) Validate() error { return nil }

// Process converts the array in a new buffer; shape is preserved.
func (n *DBToPower) Process(ctx context.Context, ec graph.Context) (graph.NumericArray, error) {
	if n.Array.IsEmpty() {
		return graph.NumericArray{}, graph.ErrEmptyArray
	}
	return graph.NumericArray{
		Data:  feature.DBToPower(n.Array.Data, 1),
		Shape: n.Array.Shape,
	}, nil
}
