// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Add performs in-place element-wise addition: dst[i] += s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Returns early if either slice is empty.
func Add[T hwy.Floats](dst, s []T) {
	if len(dst) == 0 || len(s) == 0 {
		return
	}

	n := min(len(dst), len(s))
	lanes := hwy.Zero[T]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		vs := hwy.Load(s[i:])
		hwy.Store(hwy.Add(vd, vs), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] += s[i]
	}
}

// AddTo performs element-wise addition: dst[i] = a[i] + b[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Returns early if any slice is empty.
func AddTo[T hwy.Floats](dst, a, b []T) {
	if len(dst) == 0 || len(a) == 0 || len(b) == 0 {
		return
	}

	n := min(len(dst), min(len(a), len(b)))
	lanes := hwy.Zero[T]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		hwy.Store(hwy.Add(va, vb), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub performs in-place element-wise subtraction: dst[i] -= s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Returns early if either slice is empty.
func Sub[T hwy.Floats](dst, s []T) {
	if len(dst) == 0 || len(s) == 0 {
		return
	}

	n := min(len(dst), len(s))
	lanes := hwy.Zero[T]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		vs := hwy.Load(s[i:])
		hwy.Store(hwy.Sub(vd, vs), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] -= s[i]
	}
}

// SubTo performs element-wise subtraction: dst[i] = a[i] - b[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Returns early if any slice is empty.
func SubTo[T hwy.Floats](dst, a, b []T) {
	if len(dst) == 0 || len(a) == 0 || len(b) == 0 {
		return
	}

	n := min(len(dst), min(len(a), len(b)))
	lanes := hwy.Zero[T]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		hwy.Store(hwy.Sub(va, vb), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// Mul performs in-place element-wise multiplication: dst[i] *= s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Returns early if either slice is empty.
func Mul[T hwy.Floats](dst, s []T) {
	if len(dst) == 0 || len(s) == 0 {
		return
	}

	n := min(len(dst), len(s))
	lanes := hwy.Zero[T]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		vs := hwy.Load(s[i:])
		hwy.Store(hwy.Mul(vd, vs), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] *= s[i]
	}
}

// MulTo performs element-wise multiplication: dst[i] = a[i] * b[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Returns early if any slice is empty.
func MulTo[T hwy.Floats](dst, a, b []T) {
	if len(dst) == 0 || len(a) == 0 || len(b) == 0 {
		return
	}

	n := min(len(dst), min(len(a), len(b)))
	lanes := hwy.Zero[T]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		hwy.Store(hwy.Mul(va, vb), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Div performs in-place element-wise division: dst[i] /= s[i].
//
// Division by a zero divisor yields NaN for that element. This follows the
// library's scalar division rule rather than IEEE 754 (+/-Inf), so the
// kernel is a scalar loop instead of hwy.Div.
//
// If the slices have different lengths, the operation uses the minimum length.
func Div[T hwy.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	for i := 0; i < n; i++ {
		if s[i] == 0 {
			dst[i] = T(math.NaN())
			continue
		}
		dst[i] /= s[i]
	}
}

// DivTo performs element-wise division: dst[i] = a[i] / b[i].
//
// Division by a zero divisor yields NaN for that element; see Div.
//
// If the slices have different lengths, the operation uses the minimum length.
func DivTo[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			dst[i] = T(math.NaN())
			continue
		}
		dst[i] = a[i] / b[i]
	}
}

// Scale performs in-place scalar multiplication: dst[i] *= c.
func Scale[T hwy.Floats](c T, dst []T) {
	if len(dst) == 0 {
		return
	}

	n := len(dst)
	vc := hwy.Set(c)
	lanes := vc.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		hwy.Store(hwy.Mul(vd, vc), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] *= c
	}
}

// ScaleTo performs scalar multiplication: dst[i] = c * s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
func ScaleTo[T hwy.Floats](dst []T, c T, s []T) {
	if len(dst) == 0 || len(s) == 0 {
		return
	}

	n := min(len(dst), len(s))
	vc := hwy.Set(c)
	lanes := vc.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vs := hwy.Load(s[i:])
		hwy.Store(hwy.Mul(vc, vs), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = c * s[i]
	}
}

// AddConst performs in-place scalar addition: dst[i] += c.
func AddConst[T hwy.Floats](c T, dst []T) {
	if len(dst) == 0 {
		return
	}

	n := len(dst)
	vc := hwy.Set(c)
	lanes := vc.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		hwy.Store(hwy.Add(vd, vc), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] += c
	}
}

// MulConstAddTo performs fused multiply-add: dst[i] += a * x[i].
//
// This operation is also known as AXPY (a*x plus y) in BLAS terminology.
// It uses fused multiply-add instructions when available.
//
// If the slices have different lengths, the operation uses the minimum length.
func MulConstAddTo[T hwy.Floats](dst []T, a T, x []T) {
	if len(dst) == 0 || len(x) == 0 {
		return
	}

	n := min(len(dst), len(x))
	va := hwy.Set(a)
	lanes := va.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		vx := hwy.Load(x[i:])
		// MulAdd computes a*b + c, so va*vx + vd
		hwy.Store(hwy.MulAdd(va, vx, vd), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] += a * x[i]
	}
}
