// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-linear/linear/vec"
)

// Vector is an N-dimensional single-precision vector. The zero value is an
// empty vector; use New or NewFromSlice for sized ones.
//
// Data is exported for direct element access and for handing the buffer to
// the vec kernels; mutating it through a View is visible to all views.
type Vector struct {
	// Data holds the elements as a flat buffer.
	Data []float32
}

// New creates a vector with the given number of dimensions, zero-initialized.
func New(columns int) *Vector {
	return &Vector{Data: make([]float32, columns)}
}

// NewFromSlice creates a vector that copies the given elements.
func NewFromSlice(data []float32) *Vector {
	v := New(len(data))
	copy(v.Data, data)
	return v
}

// Len returns the number of dimensions.
func (v *Vector) Len() int {
	return len(v.Data)
}

// At returns the element at index i.
// Returns ErrIndexOutOfRange if i is out of bounds.
func (v *Vector) At(i int) (float32, error) {
	if i < 0 || i >= len(v.Data) {
		return 0, fmt.Errorf("%w: %d in %d-dimensional vector", ErrIndexOutOfRange, i, len(v.Data))
	}
	return v.Data[i], nil
}

// Set stores value at index i.
// Returns ErrIndexOutOfRange if i is out of bounds.
func (v *Vector) Set(i int, value float32) error {
	if i < 0 || i >= len(v.Data) {
		return fmt.Errorf("%w: %d in %d-dimensional vector", ErrIndexOutOfRange, i, len(v.Data))
	}
	v.Data[i] = value
	return nil
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	return NewFromSlice(v.Data)
}

// View returns a shallow copy that shares the underlying buffer.
// Mutations through either vector are visible to both.
func (v *Vector) View() *Vector {
	return &Vector{Data: v.Data}
}

// Fill sets every element to c.
func (v *Vector) Fill(c float32) {
	vec.Fill(v.Data, c)
}

// Zero sets every element to zero.
func (v *Vector) Zero() {
	vec.Zero(v.Data)
}

// Equal reports whether w has the same dimensions and bit-identical
// elements.
func (v *Vector) Equal(w *Vector) bool {
	if v.Len() != w.Len() {
		return false
	}
	for i := range v.Data {
		if math.Float32bits(v.Data[i]) != math.Float32bits(w.Data[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether w has the same dimensions and every element
// within epsilon of the corresponding element of v.
func (v *Vector) ApproxEqual(w *Vector, epsilon float32) bool {
	if v.Len() != w.Len() {
		return false
	}
	for i := range v.Data {
		diff := v.Data[i] - w.Data[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// String renders the vector for debugging.
func (v *Vector) String() string {
	return fmt.Sprintf("Vector%v", v.Data)
}

// sameLen validates that two vectors have matching dimensions.
func sameLen(a, b *Vector) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, a.Len(), b.Len())
	}
	return nil
}
