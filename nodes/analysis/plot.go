package analysis

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-audionodes/graph"
)

// PlotSpectrogram renders a (bins, frames) spectrogram matrix as a grayscale
// PNG with frequency on the y axis and time on the x axis, and stores it
// through the context.
type PlotSpectrogram struct {
	Array graph.NumericArray `json:"array"`
}

// NewPlotSpectrogram returns a PlotSpectrogram node.
func NewPlotSpectrogram(array graph.NumericArray) *PlotSpectrogram {
	return &PlotSpectrogram{Array: array}
}

// Validate checks that the array is two-dimensional.
func (n *PlotSpectrogram) Validate() error {
	if len(n.Array.Shape) != 2 {
		return graph.ValidateIntRange("array dimensions", len(n.Array.Shape), 2, 2)
	}
	return nil
}

// Process normalizes the matrix to 0-255, encodes it as PNG, and returns
// the stored image reference.
func (n *PlotSpectrogram) Process(ctx context.Context, ec graph.Context) (graph.ImageRef, error) {
	if err := n.Validate(); err != nil {
		return graph.ImageRef{}, err
	}
	if n.Array.IsEmpty() {
		return graph.ImageRef{}, graph.ErrEmptyArray
	}

	rows, cols := n.Array.Dims()
	lo := floats.Min(n.Array.Data)
	hi := floats.Max(n.Array.Data)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := (n.Array.At(r, c) - lo) / span
			// Row 0 is the lowest bin; draw it at the bottom.
			img.SetGray(c, rows-1-r, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return graph.ImageRef{}, err
	}
	return ec.ImageFromBytes(ctx, buf.Bytes())
}
