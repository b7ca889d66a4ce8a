// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-linear/linear/vec"
)

// Magnitude returns the L2 norm (Euclidean length) of the vector.
// The magnitude of an empty vector is 0.
func (v *Vector) Magnitude() float32 {
	return vec.Norm(v.Data)
}

// SquaredMagnitude returns the squared L2 norm, avoiding the square root.
func (v *Vector) SquaredMagnitude() float32 {
	return vec.SquaredNorm(v.Data)
}

// Distance returns the Euclidean distance between v and w.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Distance(w *Vector) (float32, error) {
	if err := sameLen(v, w); err != nil {
		return 0, err
	}
	return vec.L2Distance(v.Data, w.Data), nil
}

// Mean returns the arithmetic mean of the elements.
// Returns ErrEmpty for an empty vector and ErrNaNElement if any element is
// NaN.
func (v *Vector) Mean() (float32, error) {
	if v.Len() == 0 {
		return 0, ErrEmpty
	}
	for i, x := range v.Data {
		if math.IsNaN(float64(x)) {
			return 0, fmt.Errorf("%w at index %d", ErrNaNElement, i)
		}
	}
	return vec.Mean(v.Data), nil
}

// LowPassFilter estimates the mean of the elements by exponential smoothing
// rather than averaging:
//
//	m(n+1) = (1-α)·m(n) + α·x(n+1)
//
// The filter is seeded with the first element. Alpha must be in (0, 1];
// larger values weight recent elements more heavily.
// Returns ErrEmpty for an empty vector.
func (v *Vector) LowPassFilter(alpha float32) (float32, error) {
	if v.Len() == 0 {
		return 0, ErrEmpty
	}
	if alpha <= 0 || alpha > 1 {
		return 0, fmt.Errorf("linear: alpha %v outside (0, 1]", alpha)
	}

	m := v.Data[0]
	for _, x := range v.Data[1:] {
		m = (1-alpha)*m + alpha*x
	}
	return m, nil
}

// Normalize scales the vector to unit length. With inplace true the
// receiver is modified and returned; otherwise a new vector is returned and
// the receiver is untouched.
// Returns ErrZeroMagnitude if the vector has zero length.
func (v *Vector) Normalize(inplace bool) (*Vector, error) {
	if vec.SquaredNorm(v.Data) == 0 {
		return nil, ErrZeroMagnitude
	}

	if inplace {
		vec.Normalize(v.Data)
		return v, nil
	}

	out := New(v.Len())
	vec.NormalizeTo(out.Data, v.Data)
	return out, nil
}

// Scale multiplies every element by factor. With inplace true the receiver
// is modified and returned; otherwise a new vector is returned.
func (v *Vector) Scale(factor float32, inplace bool) *Vector {
	if inplace {
		vec.Scale(factor, v.Data)
		return v
	}
	return v.MulScalar(factor)
}

// Clip clamps every element to the range [lo, hi]. With inplace true the
// receiver is modified and returned; otherwise a new vector is returned.
// Callers are expected to pass lo <= hi.
func (v *Vector) Clip(lo, hi float32, inplace bool) *Vector {
	if inplace {
		vec.Clip(v.Data, lo, hi)
		return v
	}
	out := New(v.Len())
	vec.ClipTo(out.Data, v.Data, lo, hi)
	return out
}

// Dot returns the dot product of v and w.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Dot(w *Vector) (float32, error) {
	if err := sameLen(v, w); err != nil {
		return 0, err
	}
	return vec.Dot(v.Data, w.Data), nil
}

// Cross returns the cross product of two 3-dimensional vectors.
// Returns ErrCrossDimension if either operand is not 3-dimensional.
func (v *Vector) Cross(w *Vector) (*Vector, error) {
	if v.Len() != 3 || w.Len() != 3 {
		return nil, fmt.Errorf("%w: got %d and %d", ErrCrossDimension, v.Len(), w.Len())
	}

	out := New(3)
	out.Data[0] = v.Data[1]*w.Data[2] - v.Data[2]*w.Data[1]
	out.Data[1] = v.Data[2]*w.Data[0] - v.Data[0]*w.Data[2]
	out.Data[2] = v.Data[0]*w.Data[1] - v.Data[1]*w.Data[0]
	return out, nil
}
