// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"fmt"

	"github.com/ajroetker/go-linear/linear/lehmer"
	"github.com/ajroetker/go-linear/linear/vec"
)

// Tensor is a dense rank-3 single-precision tensor laid out as a stack of
// row-major matrix layers: element (row, col, layer) lives at
// Data[layer*rows*cols + row*cols + col].
type Tensor struct {
	// Data holds the elements as a single flat buffer, layer-major.
	Data []float32

	rows   int
	cols   int
	layers int
}

// NewTensor creates a rows x cols x layers tensor, zero-initialized.
// Negative dimensions are treated as zero.
func NewTensor(rows, cols, layers int) *Tensor {
	rows = max(rows, 0)
	cols = max(cols, 0)
	layers = max(layers, 0)
	return &Tensor{
		Data:   make([]float32, rows*cols*layers),
		rows:   rows,
		cols:   cols,
		layers: layers,
	}
}

// Rows returns the height of each layer.
func (t *Tensor) Rows() int { return t.rows }

// Cols returns the width of each layer.
func (t *Tensor) Cols() int { return t.cols }

// Layers returns the depth of the tensor.
func (t *Tensor) Layers() int { return t.layers }

// Elements returns the total number of elements.
func (t *Tensor) Elements() int { return t.rows * t.cols * t.layers }

// At returns the element at (row, col, layer).
// Returns ErrIndexOutOfRange if any index is out of bounds.
func (t *Tensor) At(row, col, layer int) (float32, error) {
	if err := t.check(row, col, layer); err != nil {
		return 0, err
	}
	return t.Data[t.offset(row, col, layer)], nil
}

// Set stores value at (row, col, layer).
// Returns ErrIndexOutOfRange if any index is out of bounds.
func (t *Tensor) Set(row, col, layer int, value float32) error {
	if err := t.check(row, col, layer); err != nil {
		return err
	}
	t.Data[t.offset(row, col, layer)] = value
	return nil
}

func (t *Tensor) check(row, col, layer int) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols || layer < 0 || layer >= t.layers {
		return fmt.Errorf("%w: (%d, %d, %d) in %dx%dx%d tensor",
			ErrIndexOutOfRange, row, col, layer, t.rows, t.cols, t.layers)
	}
	return nil
}

func (t *Tensor) offset(row, col, layer int) int {
	return layer*t.rows*t.cols + row*t.cols + col
}

// Fill sets every element to value.
func (t *Tensor) Fill(value float32) {
	vec.Fill(t.Data, value)
}

// RandomFill initializes every element with a Lehmer draw scaled into
// [lo, hi).
func (t *Tensor) RandomFill(s *lehmer.State, lo, hi float32) {
	for i := range t.Data {
		t.Data[i] = s.Float32InRange(lo, hi)
	}
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := NewTensor(t.rows, t.cols, t.layers)
	copy(out.Data, t.Data)
	return out
}

// View returns a shallow copy that shares the underlying buffer.
func (t *Tensor) View() *Tensor {
	return &Tensor{Data: t.Data, rows: t.rows, cols: t.cols, layers: t.layers}
}

// Layer returns layer k as a Matrix view sharing the tensor buffer.
// Returns ErrIndexOutOfRange if k is out of bounds.
func (t *Tensor) Layer(k int) (*Matrix, error) {
	if k < 0 || k >= t.layers {
		return nil, fmt.Errorf("%w: layer %d of %d", ErrIndexOutOfRange, k, t.layers)
	}
	size := t.rows * t.cols
	return &Matrix{
		Data: t.Data[k*size : (k+1)*size : (k+1)*size],
		rows: t.rows,
		cols: t.cols,
	}, nil
}

// String renders the shape for debugging.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%dx%dx%d)", t.rows, t.cols, t.layers)
}
