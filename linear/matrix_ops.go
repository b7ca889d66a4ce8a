// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/ajroetker/go-linear/linear/vec"
)

// transposeBlock is the tile edge for the cache-blocked transpose.
// 16x16 float32 tiles fit comfortably in L1.
const transposeBlock = 16

// general adapts the matrix to the blas32 dense layout. The returned value
// shares the matrix buffer.
func (m *Matrix) general() blas32.General {
	return blas32.General{
		Rows:   m.rows,
		Cols:   m.cols,
		Stride: m.cols,
		Data:   m.Data,
	}
}

// Add returns the element-wise sum m + n as a new matrix.
// Returns ErrDimensionMismatch if the shapes differ.
func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, n.rows, n.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	vec.AddTo(out.Data, m.Data, n.Data)
	return out, nil
}

// Sub returns the element-wise difference m - n as a new matrix.
// Returns ErrDimensionMismatch if the shapes differ.
func (m *Matrix) Sub(n *Matrix) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, n.rows, n.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	vec.SubTo(out.Data, m.Data, n.Data)
	return out, nil
}

// Scale returns m with every element multiplied by c, as a new matrix.
func (m *Matrix) Scale(c float32) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	vec.ScaleTo(out.Data, c, m.Data)
	return out
}

// Mul returns the matrix product m x n via single-precision GEMM.
// m is (r x k), n must be (k x c); the result is (r x c).
// Returns ErrDimensionMismatch if the inner dimensions differ.
func (m *Matrix) Mul(n *Matrix) (*Matrix, error) {
	if m.cols != n.rows {
		return nil, fmt.Errorf("%w: inner dimensions %d and %d",
			ErrDimensionMismatch, m.cols, n.rows)
	}

	out := NewMatrix(m.rows, n.cols)
	if m.rows == 0 || n.cols == 0 || m.cols == 0 {
		return out, nil
	}

	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, m.general(), n.general(), 0, out.general())
	return out, nil
}

// MulVec returns the matrix-vector product m x v via single-precision GEMV.
// m is (r x c), v must have c dimensions; the result has r dimensions.
// Returns ErrDimensionMismatch if the dimensions differ.
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if m.cols != v.Len() {
		return nil, fmt.Errorf("%w: %d columns and %d dimensions",
			ErrDimensionMismatch, m.cols, v.Len())
	}

	out := New(m.rows)
	if m.rows == 0 || m.cols == 0 {
		return out, nil
	}

	x := blas32.Vector{N: v.Len(), Inc: 1, Data: v.Data}
	y := blas32.Vector{N: out.Len(), Inc: 1, Data: out.Data}
	blas32.Gemv(blas.NoTrans, 1, m.general(), x, 0, y)
	return out, nil
}

// Transpose returns a new matrix with rows and columns exchanged.
// Uses a cache-blocked copy; the receiver is untouched.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)

	for ii := 0; ii < m.rows; ii += transposeBlock {
		iEnd := min(ii+transposeBlock, m.rows)
		for jj := 0; jj < m.cols; jj += transposeBlock {
			jEnd := min(jj+transposeBlock, m.cols)
			for i := ii; i < iEnd; i++ {
				for j := jj; j < jEnd; j++ {
					out.Data[j*m.rows+i] = m.Data[i*m.cols+j]
				}
			}
		}
	}

	return out
}
