// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"
	"testing"
)

const (
	epsilon32 = float32(1e-5)
	epsilon64 = 1e-12
)

// approxEqual32 checks if two float32 values are approximately equal.
func approxEqual32(a, b, epsilon float32) bool {
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}
	if math.IsInf(float64(a), 0) && math.IsInf(float64(b), 0) {
		return (a > 0) == (b > 0)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

// sliceApproxEqual32 checks if two float32 slices are approximately equal.
func sliceApproxEqual32(a, b []float32, epsilon float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approxEqual32(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// makeVector32 generates a test vector from an index function.
func makeVector32(size int, gen func(int) float32) []float32 {
	v := make([]float32, size)
	for i := range v {
		v[i] = gen(i)
	}
	return v
}

// ============================================================================
// Arithmetic kernels
// ============================================================================

func TestAddTo(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want []float32
	}{
		{"empty", []float32{}, []float32{}, []float32{}},
		{"single", []float32{1}, []float32{2}, []float32{3}},
		{"basic", []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}, []float32{6, 8, 10, 12}},
		{"negatives", []float32{-1, -2, 3}, []float32{1, 2, -3}, []float32{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, len(tt.a))
			AddTo(dst, tt.a, tt.b)
			if !sliceApproxEqual32(dst, tt.want, epsilon32) {
				t.Errorf("AddTo() = %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestAddInPlace(t *testing.T) {
	dst := []float32{1, 2, 3, 4}
	Add(dst, []float32{5, 6, 7, 8})
	want := []float32{6, 8, 10, 12}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("Add() = %v, want %v", dst, want)
	}
}

func TestSubTo(t *testing.T) {
	dst := make([]float32, 4)
	SubTo(dst, []float32{10, 20, 30, 40}, []float32{1, 2, 3, 4})
	want := []float32{9, 18, 27, 36}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("SubTo() = %v, want %v", dst, want)
	}
}

func TestMulTo(t *testing.T) {
	dst := make([]float32, 4)
	MulTo(dst, []float32{1, 2, 3, 4}, []float32{2, 3, 4, 5})
	want := []float32{2, 6, 12, 20}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("MulTo() = %v, want %v", dst, want)
	}
}

func TestDivTo(t *testing.T) {
	dst := make([]float32, 4)
	DivTo(dst, []float32{10, 20, 30, 40}, []float32{2, 4, 5, 8})
	want := []float32{5, 5, 6, 5}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("DivTo() = %v, want %v", dst, want)
	}
}

func TestDivToZeroDivisor(t *testing.T) {
	dst := make([]float32, 3)
	DivTo(dst, []float32{1, 2, 3}, []float32{1, 0, 3})
	if dst[0] != 1 || dst[2] != 1 {
		t.Errorf("DivTo() = %v, want [1 NaN 1]", dst)
	}
	if !math.IsNaN(float64(dst[1])) {
		t.Errorf("DivTo() zero divisor = %v, want NaN", dst[1])
	}
}

func TestScale(t *testing.T) {
	dst := []float32{1, 2, 3, 4}
	Scale(float32(2.5), dst)
	want := []float32{2.5, 5, 7.5, 10}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("Scale() = %v, want %v", dst, want)
	}
}

func TestScaleTo(t *testing.T) {
	dst := make([]float32, 4)
	ScaleTo(dst, 2, []float32{1, 2, 3, 4})
	want := []float32{2, 4, 6, 8}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("ScaleTo() = %v, want %v", dst, want)
	}
}

func TestAddConst(t *testing.T) {
	dst := []float32{1, 2, 3, 4}
	AddConst(10, dst)
	want := []float32{11, 12, 13, 14}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("AddConst() = %v, want %v", dst, want)
	}
}

func TestMulConstAddTo(t *testing.T) {
	dst := []float32{1, 2, 3, 4}
	MulConstAddTo(dst, 10, []float32{1, 1, 1, 1})
	want := []float32{11, 12, 13, 14}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("MulConstAddTo() = %v, want %v", dst, want)
	}
}

// Large sizes exercise the SIMD main loop plus the scalar tail.
func TestArithmeticLargeSizes(t *testing.T) {
	for _, size := range []int{15, 16, 17, 63, 64, 65, 1000, 1023} {
		a := makeVector32(size, func(i int) float32 { return float32(i + 1) })
		b := makeVector32(size, func(i int) float32 { return float32(2 * (i + 1)) })

		dst := make([]float32, size)
		AddTo(dst, a, b)
		for i := range dst {
			want := float32(3 * (i + 1))
			if !approxEqual32(dst[i], want, epsilon32) {
				t.Fatalf("size %d: AddTo[%d] = %v, want %v", size, i, dst[i], want)
			}
		}

		SubTo(dst, b, a)
		for i := range dst {
			want := float32(i + 1)
			if !approxEqual32(dst[i], want, epsilon32) {
				t.Fatalf("size %d: SubTo[%d] = %v, want %v", size, i, dst[i], want)
			}
		}
	}
}

// ============================================================================
// Dot, norms, distances
// ============================================================================

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{"empty", []float32{}, []float32{}, 0},
		{"single", []float32{3}, []float32{4}, 12},
		{"basic", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"mismatched lengths", []float32{1, 2, 3, 4}, []float32{1, 2}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			if !approxEqual32(got, tt.want, epsilon32) {
				t.Errorf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotLarge(t *testing.T) {
	n := 1000
	a := makeVector32(n, func(i int) float32 { return 1 })
	b := makeVector32(n, func(i int) float32 { return 2 })
	got := Dot(a, b)
	if !approxEqual32(got, float32(2*n), 0.5) {
		t.Errorf("Dot() = %v, want %v", got, 2*n)
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		v    []float32
		want float32
	}{
		{"empty", []float32{}, 0},
		{"zero vector", []float32{0, 0, 0}, 0},
		{"3-4-5 triangle", []float32{3, 4}, 5},
		{"unit", []float32{0, 1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Norm(tt.v)
			if !approxEqual32(got, tt.want, epsilon32) {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSquaredNorm(t *testing.T) {
	got := SquaredNorm([]float32{3, 4})
	if !approxEqual32(got, 25, epsilon32) {
		t.Errorf("SquaredNorm() = %v, want 25", got)
	}
}

func TestL2Distance(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{"empty", []float32{}, []float32{}, 0},
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"basic", []float32{1, 2, 3}, []float32{4, 5, 6}, float32(math.Sqrt(27))},
		{"axis", []float32{0, 0}, []float32{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := L2Distance(tt.a, tt.b)
			if !approxEqual32(got, tt.want, epsilon32) {
				t.Errorf("L2Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestL2SquaredDistanceLarge(t *testing.T) {
	// Exercises the 4x unrolled loop, the single-vector loop, and the tail.
	for _, size := range []int{1, 7, 16, 33, 64, 100, 1023} {
		a := makeVector32(size, func(i int) float32 { return float32(i) })
		b := makeVector32(size, func(i int) float32 { return float32(i + 1) })
		got := L2SquaredDistance(a, b)
		// Every element differs by exactly 1.
		if !approxEqual32(got, float32(size), epsilon32*float32(size)) {
			t.Errorf("size %d: L2SquaredDistance() = %v, want %v", size, got, size)
		}
	}
}

// ============================================================================
// Normalize, clip, reductions
// ============================================================================

func TestNormalize(t *testing.T) {
	v := []float32{3, 0, 4}
	Normalize(v)
	want := []float32{0.6, 0, 0.8}
	if !sliceApproxEqual32(v, want, epsilon32) {
		t.Errorf("Normalize() = %v, want %v", v, want)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	Normalize(v)
	want := []float32{0, 0, 0}
	if !sliceApproxEqual32(v, want, epsilon32) {
		t.Errorf("Normalize() zero vector = %v, want unchanged", v)
	}
}

func TestNormalizeTo(t *testing.T) {
	src := []float32{3, 0, 4}
	dst := make([]float32, 3)
	NormalizeTo(dst, src)
	want := []float32{0.6, 0, 0.8}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("NormalizeTo() = %v, want %v", dst, want)
	}
	if !sliceApproxEqual32(src, []float32{3, 0, 4}, epsilon32) {
		t.Errorf("NormalizeTo() mutated src: %v", src)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name   string
		v      []float32
		lo, hi float32
		want   []float32
	}{
		{"no clipping", []float32{1, 2, 3}, 0, 10, []float32{1, 2, 3}},
		{"clip low", []float32{-5, 0, 5}, -1, 10, []float32{-1, 0, 5}},
		{"clip high", []float32{-5, 0, 5}, -10, 1, []float32{-5, 0, 1}},
		{"clip both", []float32{-5, 0, 5}, -1, 1, []float32{-1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := append([]float32(nil), tt.v...)
			Clip(v, tt.lo, tt.hi)
			if !sliceApproxEqual32(v, tt.want, epsilon32) {
				t.Errorf("Clip() = %v, want %v", v, tt.want)
			}
		})
	}
}

func TestClipTo(t *testing.T) {
	src := []float32{-5, 0, 5, 100}
	dst := make([]float32, 4)
	ClipTo(dst, src, -1, 1)
	want := []float32{-1, 0, 1, 1}
	if !sliceApproxEqual32(dst, want, epsilon32) {
		t.Errorf("ClipTo() = %v, want %v", dst, want)
	}
}

func TestClipLarge(t *testing.T) {
	size := 257
	v := makeVector32(size, func(i int) float32 { return float32(i - 128) })
	Clip(v, -10, 10)
	for i := range v {
		if v[i] < -10 || v[i] > 10 {
			t.Fatalf("Clip()[%d] = %v outside [-10, 10]", i, v[i])
		}
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		v    []float32
		want float32
	}{
		{"empty", []float32{}, 0},
		{"single", []float32{5}, 5},
		{"basic", []float32{1, 2, 3, 4}, 10},
		{"cancel", []float32{1, -1, 2, -2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.v)
			if !approxEqual32(got, tt.want, epsilon32) {
				t.Errorf("Sum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	got := Mean([]float32{1, 2, 3, 4})
	if !approxEqual32(got, 2.5, epsilon32) {
		t.Errorf("Mean() = %v, want 2.5", got)
	}
	if Mean([]float32{}) != 0 {
		t.Errorf("Mean(empty) != 0")
	}
}

// ============================================================================
// Utilities
// ============================================================================

func TestZeroAndFill(t *testing.T) {
	v := []float32{1, 2, 3}
	Zero(v)
	if !sliceApproxEqual32(v, []float32{0, 0, 0}, 0) {
		t.Errorf("Zero() = %v", v)
	}
	Fill(v, 7)
	if !sliceApproxEqual32(v, []float32{7, 7, 7}, 0) {
		t.Errorf("Fill() = %v", v)
	}
}

func TestEncodeDecodeFloat32s(t *testing.T) {
	src := []float32{0, 1, -1, math.Pi, float32(math.Inf(1)), 1e-38}
	buf := make([]byte, len(src)*4)
	EncodeFloat32s(buf, src)

	dst := make([]float32, len(src))
	DecodeFloat32s(buf, dst)

	for i := range src {
		if math.Float32bits(src[i]) != math.Float32bits(dst[i]) {
			t.Errorf("roundtrip[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestEncodeFloat32sShortDst(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("EncodeFloat32s with short dst did not panic")
		}
	}()
	EncodeFloat32s(make([]byte, 3), []float32{1})
}
