// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"fmt"
	"math"
)

// PolarToCartesian converts a 2-dimensional polar vector (r, θ) to
// cartesian coordinates:
//
//	x = r·cos(θ), y = r·sin(θ)
//
// θ is in radians. Returns ErrCoordDimension if the vector is not
// 2-dimensional.
func (v *Vector) PolarToCartesian() (*Vector, error) {
	if v.Len() != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrCoordDimension, v.Len())
	}

	r := float64(v.Data[0])
	theta := float64(v.Data[1])

	out := New(2)
	out.Data[0] = float32(r * math.Cos(theta))
	out.Data[1] = float32(r * math.Sin(theta))
	return out, nil
}

// CartesianToPolar converts a 2-dimensional cartesian vector (x, y) to
// polar coordinates:
//
//	r = √(x² + y²), θ = atan2(y, x)
//
// Returns ErrCoordDimension if the vector is not 2-dimensional.
func (v *Vector) CartesianToPolar() (*Vector, error) {
	if v.Len() != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrCoordDimension, v.Len())
	}

	x := float64(v.Data[0])
	y := float64(v.Data[1])

	out := New(2)
	out.Data[0] = float32(math.Hypot(x, y))
	out.Data[1] = float32(math.Atan2(y, x))
	return out, nil
}
