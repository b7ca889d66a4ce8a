// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

// Package lehmer implements the Park-Miller MINSTD multiplicative linear
// congruential generator:
//
//	z(n+1) = a * z(n) mod m,  with m = 2^31 - 1 and a = 48271
//
// Three evaluation strategies are provided — Modulo (direct 64-bit),
// Gamma (Schrage's method, which never overflows 32 bits), and Delta
// (the delta decomposition from Park and Miller's paper). All three
// advance the same stream and produce identical sequences; they exist so
// the arithmetic can be cross-checked, and because matrix/tensor random
// initialization historically selected between them.
//
// The generator is deterministic and NOT cryptographically secure. It is
// meant for reproducible initialization of vectors, matrices and tensors.
package lehmer

const (
	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus int64 = 2147483647
	// Multiplier is the full-period MINSTD multiplier.
	Multiplier int64 = 48271

	// Schrage decomposition of Modulus by Multiplier:
	// Modulus = Multiplier*quotient + remainder.
	quotient  = Modulus / Multiplier // 44488
	remainder = Modulus % Multiplier // 3399

	// DefaultSeed is used when a seed of 0 (which would collapse the
	// stream) is supplied.
	DefaultSeed int64 = 123456789
)

// State holds the generator state. It is not safe for concurrent use;
// give each goroutine its own State.
type State struct {
	seed int64 // the seed the stream started from
	z    int64 // current value, always in [1, Modulus-1]
}

// NewState returns a generator seeded with seed. Seeds are reduced into
// the valid range [1, Modulus-1]; a seed of 0 is replaced by DefaultSeed.
func NewState(seed int64) *State {
	s := &State{}
	s.Seed(seed)
	return s
}

// Seed resets the stream to start from seed.
func (s *State) Seed(seed int64) {
	seed %= Modulus
	if seed < 0 {
		seed += Modulus
	}
	if seed == 0 {
		seed = DefaultSeed
	}
	s.seed = seed
	s.z = seed
}

// Reset rewinds the stream to the seed it was created with.
func (s *State) Reset() {
	s.z = s.seed
}

// Int63 advances the stream with direct 64-bit modular arithmetic and
// returns the raw value in [1, Modulus-1].
func (s *State) Int63() int64 {
	s.z = (Multiplier * s.z) % Modulus
	return s.z
}

// Modulo advances the stream with direct modular arithmetic and returns
// the value normalized to (0, 1).
func (s *State) Modulo() float64 {
	return float64(s.Int63()) / float64(Modulus)
}

// Gamma advances the stream using Schrage's method:
//
//	γ(z) = a*(z mod q) - r*(z div q), plus m when negative
//
// where q = m div a and r = m mod a. The intermediate terms stay within
// 32-bit range, so the method is safe even without 64-bit integer
// arithmetic. Returns the value normalized to (0, 1).
func (s *State) Gamma() float64 {
	hi := s.z / quotient
	lo := s.z % quotient

	g := Multiplier*lo - remainder*hi
	if g <= 0 {
		g += Modulus
	}
	s.z = g

	return float64(g) / float64(Modulus)
}

// Delta advances the stream using the delta decomposition
//
//	δ(z) = (z div q) - (a*z div m)
//	z'   = a*(z mod q) - r*(z div q) + m*δ(z)
//
// which is algebraically identical to Gamma (δ is 0 or 1 exactly when
// Schrage's correction is needed). Returns the value normalized to (0, 1).
func (s *State) Delta() float64 {
	hi := s.z / quotient
	lo := s.z % quotient

	d := hi - (Multiplier*s.z)/Modulus
	g := Multiplier*lo - remainder*hi + Modulus*d
	s.z = g

	return float64(g) / float64(Modulus)
}

// Float32InRange advances the stream and scales the draw into [lo, hi).
func (s *State) Float32InRange(lo, hi float32) float32 {
	return lo + float32(s.Modulo())*(hi-lo)
}
