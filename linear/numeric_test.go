// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataType(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "int32", Int32.String())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 4, Int32.Size())

	unknown := DataType(99)
	assert.Equal(t, "unknown", unknown.String())
	assert.Equal(t, 0, unknown.Size())
}

func TestEncodeDecodeFloat32(t *testing.T) {
	values := []float32{
		0, 1, -1, 0.5, -0.5,
		float32(math.Pi),
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
	}
	for _, v := range values {
		bits := EncodeFloat32(v)
		assert.Equal(t, v, DecodeFloat32(bits), "value %v", v)
	}

	// Known bit patterns.
	assert.Equal(t, int32(0), EncodeFloat32(0))
	assert.Equal(t, int32(0x3f800000), EncodeFloat32(1))
	assert.Equal(t, int32(-0x40000000), EncodeFloat32(-2))
}

func TestEncodeDecodeNaNPayload(t *testing.T) {
	nan := float32(math.NaN())
	bits := EncodeFloat32(nan)
	back := DecodeFloat32(bits)
	assert.True(t, math.IsNaN(float64(back)))
	// The payload survives the round trip bit for bit.
	assert.Equal(t, bits, EncodeFloat32(back))
}
