// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/ajroetker/go-highway/hwy"

// Dot computes the dot product (inner product) of two vectors.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
func Dot[T hwy.Floats](a, b []T) T {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := min(len(a), len(b))
	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		sum = hwy.MulAdd(va, vb, sum)
	}

	result := hwy.ReduceSum(sum)

	for ; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}
