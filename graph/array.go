package graph

import "fmt"

// NumericArray is a typed, shaped numeric buffer exchanged between nodes.
//
// Data is stored row-major. A 1-D array has Shape == [n]; a spectrogram
// matrix has Shape == [rows, cols] with rows indexing frequency bins and
// cols indexing frames, matching the conventional spectrogram orientation.
type NumericArray struct {
	Data  []float64 `json:"data"`
	Shape []int     `json:"shape"`
}

// NewVector wraps a 1-D slice as a NumericArray.
func NewVector(data []float64) NumericArray {
	return NumericArray{Data: data, Shape: []int{len(data)}}
}

// NewMatrix wraps row-major data as a rows-by-cols NumericArray.
func NewMatrix(rows, cols int, data []float64) (NumericArray, error) {
	if rows < 0 || cols < 0 {
		return NumericArray{}, fmt.Errorf("matrix dimensions must be >= 0: %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return NumericArray{}, fmt.Errorf("matrix data length %d does not match shape %dx%d", len(data), rows, cols)
	}
	return NumericArray{Data: data, Shape: []int{rows, cols}}, nil
}

// MatrixFromRows packs a slice of equal-length rows into a 2-D NumericArray.
func MatrixFromRows(rows [][]float64) (NumericArray, error) {
	if len(rows) == 0 {
		return NumericArray{Shape: []int{0, 0}}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return NumericArray{}, fmt.Errorf("row %d length %d does not match row 0 length %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return NumericArray{Data: data, Shape: []int{len(rows), cols}}, nil
}

// Len returns the total element count.
func (a NumericArray) Len() int { return len(a.Data) }

// IsEmpty reports whether the array holds no elements.
func (a NumericArray) IsEmpty() bool { return len(a.Data) == 0 }

// Dims returns rows and cols for a 2-D array. A 1-D array is reported as a
// single row.
func (a NumericArray) Dims() (rows, cols int) {
	switch len(a.Shape) {
	case 0:
		return 0, 0
	case 1:
		return 1, a.Shape[0]
	default:
		return a.Shape[0], a.Shape[1]
	}
}

// At returns the element at row r, column c of a 2-D array.
func (a NumericArray) At(r, c int) float64 {
	_, cols := a.Dims()
	return a.Data[r*cols+c]
}

// Row returns row r of a 2-D array as a slice view into Data.
func (a NumericArray) Row(r int) []float64 {
	_, cols := a.Dims()
	return a.Data[r*cols : (r+1)*cols]
}
