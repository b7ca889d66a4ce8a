// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/ajroetker/go-highway/hwy"

// Clip clamps every element of dst in-place to the range [lo, hi]:
// dst[i] = min(max(dst[i], lo), hi).
//
// Callers are expected to pass lo <= hi; the kernel applies the max first,
// so with lo > hi every element collapses to hi.
func Clip[T hwy.Floats](dst []T, lo, hi T) {
	if len(dst) == 0 {
		return
	}

	n := len(dst)
	vlo := hwy.Set(lo)
	vhi := hwy.Set(hi)
	lanes := vlo.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := hwy.Load(dst[i:])
		vd = hwy.Max(vd, vlo)
		vd = hwy.Min(vd, vhi)
		hwy.Store(vd, dst[i:])
	}

	for ; i < n; i++ {
		if dst[i] < lo {
			dst[i] = lo
		}
		if dst[i] > hi {
			dst[i] = hi
		}
	}
}

// ClipTo writes the clamped version of s into dst:
// dst[i] = min(max(s[i], lo), hi).
//
// If the slices have different lengths, the operation uses the minimum length.
func ClipTo[T hwy.Floats](dst, s []T, lo, hi T) {
	if len(dst) == 0 || len(s) == 0 {
		return
	}

	n := min(len(dst), len(s))
	vlo := hwy.Set(lo)
	vhi := hwy.Set(hi)
	lanes := vlo.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vs := hwy.Load(s[i:])
		vs = hwy.Max(vs, vlo)
		vs = hwy.Min(vs, vhi)
		hwy.Store(vs, dst[i:])
	}

	for ; i < n; i++ {
		v := s[i]
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		dst[i] = v
	}
}
