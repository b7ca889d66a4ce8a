// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// SquaredNorm computes the squared L2 norm (sum of squares) of a vector.
// The result is equivalent to Dot(v, v): Σ(v[i] * v[i]).
//
// Returns 0 if the slice is empty.
func SquaredNorm[T hwy.Floats](v []T) T {
	// Dot(v, v) keeps the same precision characteristics as the dot kernel.
	return Dot(v, v)
}

// Norm computes the L2 norm (Euclidean magnitude) of a vector:
// Sqrt(Σ(v[i] * v[i])).
//
// Returns 0 if the slice is empty.
func Norm[T hwy.Floats](v []T) T {
	squared := SquaredNorm(v)
	if squared == 0 {
		return 0
	}
	return T(math.Sqrt(float64(squared)))
}
