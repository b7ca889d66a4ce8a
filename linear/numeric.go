// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import "math"

// DataType enumerates the element types the library handles. Only 32-bit
// types are supported; 16-bit and 8-bit formats are future work.
type DataType uint8

const (
	// Float32 is IEEE-754 32-bit precision.
	Float32 DataType = iota
	// Int32 is 32-bit integer precision.
	Int32
)

func (t DataType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	default:
		return "unknown"
	}
}

// Size returns the width of the type in bytes.
func (t DataType) Size() int {
	switch t {
	case Float32, Int32:
		return 4
	default:
		return 0
	}
}

// EncodeFloat32 returns the raw IEEE-754 bit pattern of v as a signed
// 32-bit integer.
func EncodeFloat32(v float32) int32 {
	return int32(math.Float32bits(v))
}

// DecodeFloat32 reinterprets an IEEE-754 bit pattern as a float32.
// DecodeFloat32(EncodeFloat32(v)) == v for every v, including NaN payloads.
func DecodeFloat32(bits int32) float32 {
	return math.Float32frombits(uint32(bits))
}
