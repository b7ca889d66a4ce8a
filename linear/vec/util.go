// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "math"

// Zero sets every element of the given slice to zero.
func Zero[T ~float32 | ~float64](dst []T) {
	clear(dst)
}

// Fill sets every element of the given slice to c.
func Fill[T ~float32 | ~float64](dst []T, c T) {
	for i := range dst {
		dst[i] = c
	}
}

// EncodeFloat32s encodes a slice of float32 values into a byte slice
// (little-endian). Panics if dst is shorter than 4*len(src).
func EncodeFloat32s(dst []byte, src []float32) {
	if len(dst) < len(src)*4 {
		panic("dst is too short")
	}
	for i, v := range src {
		bits := math.Float32bits(v)
		dst[i*4] = byte(bits)
		dst[i*4+1] = byte(bits >> 8)
		dst[i*4+2] = byte(bits >> 16)
		dst[i*4+3] = byte(bits >> 24)
	}
}

// DecodeFloat32s decodes a byte slice into a slice of float32 values
// (little-endian). Panics if src is shorter than 4*len(dst).
func DecodeFloat32s(src []byte, dst []float32) {
	if len(src) < len(dst)*4 {
		panic("src is too short")
	}
	for i := range dst {
		bits := uint32(src[i*4]) | uint32(src[i*4+1])<<8 | uint32(src[i*4+2])<<16 | uint32(src[i*4+3])<<24
		dst[i] = math.Float32frombits(bits)
	}
}
