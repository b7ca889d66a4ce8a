// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import "errors"

// Sentinel errors returned by the typed API. Wrap sites add the offending
// dimensions with fmt.Errorf("...: %w", ...), so callers should test with
// errors.Is.
var (
	// ErrDimensionMismatch is returned when two operands have incompatible
	// dimensions for the requested operation.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrIndexOutOfRange is returned by element accessors when an index
	// falls outside the structure.
	ErrIndexOutOfRange = errors.New("linear: index out of range")

	// ErrZeroMagnitude is returned when normalizing a zero-length vector.
	ErrZeroMagnitude = errors.New("linear: cannot normalize a zero-magnitude vector")

	// ErrCrossDimension is returned when a cross product operand is not
	// 3-dimensional.
	ErrCrossDimension = errors.New("linear: cross product requires 3-dimensional vectors")

	// ErrCoordDimension is returned when a polar/cartesian conversion
	// operand is not 2-dimensional.
	ErrCoordDimension = errors.New("linear: coordinate conversion requires 2-dimensional vectors")

	// ErrNaNElement is returned by reductions that reject NaN inputs.
	ErrNaNElement = errors.New("linear: NaN element")

	// ErrEmpty is returned by reductions over empty structures.
	ErrEmpty = errors.New("linear: empty operand")

	// ErrNotSquare is returned by operations defined only for square
	// matrices.
	ErrNotSquare = errors.New("linear: matrix is not square")
)
