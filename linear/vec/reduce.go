// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/ajroetker/go-highway/hwy"

// Sum computes the sum of all elements: Σ v[i].
//
// Returns 0 if the slice is empty.
func Sum[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		return 0
	}

	n := len(v)
	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		sum = hwy.Add(sum, hwy.Load(v[i:]))
	}

	result := hwy.ReduceSum(sum)

	for ; i < n; i++ {
		result += v[i]
	}

	return result
}

// Mean computes the arithmetic mean of the elements: Σ v[i] / len(v).
//
// Returns 0 if the slice is empty. NaN elements propagate into the result;
// the typed API in the linear package rejects NaN inputs with an error.
func Mean[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		return 0
	}
	return Sum(v) / T(len(v))
}
