// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// L2SquaredDistance computes the squared Euclidean distance between two
// slices: Σ((a[i] - b[i])^2).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
func L2SquaredDistance[T hwy.Floats](a, b []T) T {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := min(len(a), len(b))

	// 4 accumulators for better instruction-level parallelism.
	// On ARM NEON, Load4 maps to a single ld1 {v0,v1,v2,v3} instruction.
	sum0 := hwy.Zero[T]()
	sum1 := hwy.Zero[T]()
	sum2 := hwy.Zero[T]()
	sum3 := hwy.Zero[T]()
	lanes := sum0.NumLanes()

	var i int
	stride := lanes * 4
	for i = 0; i+stride <= n; i += stride {
		va0, va1, va2, va3 := hwy.Load4(a[i:])
		vb0, vb1, vb2, vb3 := hwy.Load4(b[i:])

		diff0 := hwy.Sub(va0, vb0)
		diff1 := hwy.Sub(va1, vb1)
		diff2 := hwy.Sub(va2, vb2)
		diff3 := hwy.Sub(va3, vb3)

		sum0 = hwy.MulAdd(diff0, diff0, sum0)
		sum1 = hwy.MulAdd(diff1, diff1, sum1)
		sum2 = hwy.MulAdd(diff2, diff2, sum2)
		sum3 = hwy.MulAdd(diff3, diff3, sum3)
	}

	// Remaining full vectors, one at a time.
	for i+lanes <= n {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		diff := hwy.Sub(va, vb)
		sum0 = hwy.MulAdd(diff, diff, sum0)
		i += lanes
	}

	sum0 = hwy.Add(sum0, sum1)
	sum2 = hwy.Add(sum2, sum3)
	sum0 = hwy.Add(sum0, sum2)
	result := hwy.ReduceSum(sum0)

	for ; i < n; i++ {
		d := a[i] - b[i]
		result += d * d
	}

	return result
}

// L2Distance computes the Euclidean distance between two slices:
// Sqrt(Σ((a[i] - b[i])^2)).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
func L2Distance[T hwy.Floats](a, b []T) T {
	return T(math.Sqrt(float64(L2SquaredDistance(a, b))))
}
