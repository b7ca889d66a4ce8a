// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-linear/linear/lehmer"
	"github.com/ajroetker/go-linear/linear/vec"
)

// Matrix is a dense, row-major single-precision matrix. Element (i, j)
// lives at Data[i*cols + j]; the stride always equals the column count.
type Matrix struct {
	// Data holds the elements as a single flat buffer, row-major.
	Data []float32

	rows int
	cols int
}

// NewMatrix creates a rows x cols matrix, zero-initialized.
// Negative dimensions are treated as zero.
func NewMatrix(rows, cols int) *Matrix {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Matrix{
		Data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// NewMatrixFromSlice creates a rows x cols matrix that copies the given
// row-major elements. Returns ErrDimensionMismatch if len(data) != rows*cols.
func NewMatrixFromSlice(rows, cols int, data []float32) (*Matrix, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d elements for %dx%d matrix",
			ErrDimensionMismatch, len(data), rows, cols)
	}
	m := NewMatrix(rows, cols)
	copy(m.Data, data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Elements returns the total number of elements (rows * cols).
func (m *Matrix) Elements() int { return m.rows * m.cols }

// At returns the element at (row, col).
// Returns ErrIndexOutOfRange if either index is out of bounds.
func (m *Matrix) At(row, col int) (float32, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d matrix",
			ErrIndexOutOfRange, row, col, m.rows, m.cols)
	}
	return m.Data[row*m.cols+col], nil
}

// Set stores value at (row, col).
// Returns ErrIndexOutOfRange if either index is out of bounds.
func (m *Matrix) Set(row, col int, value float32) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("%w: (%d, %d) in %dx%d matrix",
			ErrIndexOutOfRange, row, col, m.rows, m.cols)
	}
	m.Data[row*m.cols+col] = value
	return nil
}

// Row returns row i as a slice view sharing the matrix buffer.
// Returns ErrIndexOutOfRange if i is out of bounds.
func (m *Matrix) Row(i int) ([]float32, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, m.rows)
	}
	return m.Data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols], nil
}

// Col returns column j as a freshly allocated slice.
// Returns ErrIndexOutOfRange if j is out of bounds.
func (m *Matrix) Col(j int) ([]float32, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, j, m.cols)
	}
	out := make([]float32, m.rows)
	for i := range out {
		out[i] = m.Data[i*m.cols+j]
	}
	return out, nil
}

// Fill sets every element to value.
func (m *Matrix) Fill(value float32) {
	vec.Fill(m.Data, value)
}

// FillIdentity sets the matrix to the identity.
// Returns ErrNotSquare for non-square matrices.
func (m *Matrix) FillIdentity() error {
	if !m.IsSquare() {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, m.rows, m.cols)
	}
	vec.Zero(m.Data)
	for i := range m.rows {
		m.Data[i*m.cols+i] = 1
	}
	return nil
}

// RandomFill initializes every element with a Lehmer draw in (0, 1).
// The three Lehmer evaluation variants produce identical streams, so a
// single entry point replaces the per-variant initializers.
func (m *Matrix) RandomFill(s *lehmer.State) {
	for i := range m.Data {
		m.Data[i] = float32(s.Modulo())
	}
}

// RandomFillRange initializes every element with a Lehmer draw scaled into
// [lo, hi).
func (m *Matrix) RandomFillRange(s *lehmer.State, lo, hi float32) {
	for i := range m.Data {
		m.Data[i] = s.Float32InRange(lo, hi)
	}
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	copy(out.Data, m.Data)
	return out
}

// View returns a shallow copy that shares the underlying buffer.
func (m *Matrix) View() *Matrix {
	return &Matrix{Data: m.Data, rows: m.rows, cols: m.cols}
}

// IsZero reports whether every element is zero.
func (m *Matrix) IsZero() bool {
	for _, x := range m.Data {
		if x != 0 {
			return false
		}
	}
	return true
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool {
	return m.rows == m.cols
}

// IsIdentity reports whether the matrix is square with ones on the diagonal
// and zeros elsewhere.
func (m *Matrix) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	for i := range m.rows {
		for j := range m.cols {
			value := m.Data[i*m.cols+j]
			if (i == j && value != 1) || (i != j && value != 0) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether n has the same shape and bit-identical elements.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.Data {
		if math.Float32bits(m.Data[i]) != math.Float32bits(n.Data[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether n has the same shape and every element within
// epsilon of the corresponding element of m.
func (m *Matrix) ApproxEqual(n *Matrix, epsilon float32) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.Data {
		diff := m.Data[i] - n.Data[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// String renders the shape for debugging.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.rows, m.cols)
}
