// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"math"

	"github.com/ajroetker/go-linear/linear/vec"
)

// Add returns the element-wise sum v + w as a new vector.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := sameLen(v, w); err != nil {
		return nil, err
	}
	out := New(v.Len())
	vec.AddTo(out.Data, v.Data, w.Data)
	return out, nil
}

// Sub returns the element-wise difference v - w as a new vector.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := sameLen(v, w); err != nil {
		return nil, err
	}
	out := New(v.Len())
	vec.SubTo(out.Data, v.Data, w.Data)
	return out, nil
}

// Mul returns the element-wise (Hadamard) product v * w as a new vector.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Mul(w *Vector) (*Vector, error) {
	if err := sameLen(v, w); err != nil {
		return nil, err
	}
	out := New(v.Len())
	vec.MulTo(out.Data, v.Data, w.Data)
	return out, nil
}

// Div returns the element-wise quotient v / w as a new vector.
// Elements divided by a zero divisor become NaN.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Div(w *Vector) (*Vector, error) {
	if err := sameLen(v, w); err != nil {
		return nil, err
	}
	out := New(v.Len())
	vec.DivTo(out.Data, v.Data, w.Data)
	return out, nil
}

// AddScalar returns v with c added to every element, as a new vector.
func (v *Vector) AddScalar(c float32) *Vector {
	out := v.Clone()
	vec.AddConst(c, out.Data)
	return out
}

// SubScalar returns v with c subtracted from every element, as a new vector.
func (v *Vector) SubScalar(c float32) *Vector {
	return v.AddScalar(-c)
}

// MulScalar returns v with every element multiplied by c, as a new vector.
func (v *Vector) MulScalar(c float32) *Vector {
	out := New(v.Len())
	vec.ScaleTo(out.Data, c, v.Data)
	return out
}

// DivScalar returns v with every element divided by c, as a new vector.
// With c == 0, every element becomes NaN (division by zero is undefined).
func (v *Vector) DivScalar(c float32) *Vector {
	out := New(v.Len())
	if c == 0 {
		vec.Fill(out.Data, float32(math.NaN()))
		return out
	}
	vec.ScaleTo(out.Data, 1/c, v.Data)
	return out
}

// ZipWith applies op to each corresponding pair of elements and returns the
// resulting vector. This is the generic element-wise executor; the named
// operations above use fused kernels instead.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) ZipWith(w *Vector, op func(x, y float32) float32) (*Vector, error) {
	if err := sameLen(v, w); err != nil {
		return nil, err
	}
	out := New(v.Len())
	for i := range v.Data {
		out.Data[i] = op(v.Data[i], w.Data[i])
	}
	return out, nil
}

// Map applies op to every element and returns the resulting vector.
func (v *Vector) Map(op func(x float32) float32) *Vector {
	out := New(v.Len())
	for i := range v.Data {
		out.Data[i] = op(v.Data[i])
	}
	return out
}
