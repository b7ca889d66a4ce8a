// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Normalize normalizes a vector in-place to unit length (L2 norm = 1).
//
// If the vector is empty or has zero norm (all zeros), it is left unchanged.
// This prevents division by zero while preserving the zero vector. The typed
// API in the linear package turns the zero-norm case into an error instead.
func Normalize[T hwy.Floats](dst []T) {
	squared := SquaredNorm(dst)
	if squared == 0 {
		return
	}

	norm := T(math.Sqrt(float64(squared)))
	Scale(T(1)/norm, dst)
}

// NormalizeTo writes the unit-length version of s into dst: dst = s / ||s||.
//
// If s has zero norm, dst receives a copy of s unchanged.
// If the slices have different lengths, the operation uses the minimum length.
func NormalizeTo[T hwy.Floats](dst, s []T) {
	squared := SquaredNorm(s)
	if squared == 0 {
		copy(dst, s)
		return
	}

	norm := T(math.Sqrt(float64(squared)))
	ScaleTo(dst, T(1)/norm, s)
}
