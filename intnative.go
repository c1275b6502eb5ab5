// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

import (
	"math"

	"golang.org/x/exp/constraints"
)

// New allocates and returns a new Int set to x.
func New[T constraints.Integer](x T) *Int {
	if x < 0 {
		return new(Int).SetInt64(int64(x))
	}
	return new(Int).SetUint64(uint64(x))
}

// Native returns the value of x converted to T and whether the conversion is
// exact. If x does not fit in T, the result is x truncated to the width of T
// (the low bits of its two's complement representation) and ok is false.
func Native[T constraints.Integer](x *Int) (v T, ok bool) {
	v = T(x.v.low64())
	var buf [3]Word
	var y limbs
	if v < 0 {
		y = limbs(buf[:0]).setInt64(int64(v))
	} else {
		y = limbs(buf[:0]).setUint64(uint64(v))
	}
	return v, y.cmp(x.v) == 0
}

// NewFloat allocates and returns a new Int set to f truncated toward zero.
// If f is NaN or ±Inf, NewFloat returns nil and ErrNotFinite.
func NewFloat[F constraints.Float](f F) (*Int, error) {
	return new(Int).SetFloat64(float64(f))
}

// SetFloat64 sets z to f truncated toward zero and returns z. If f is NaN or
// ±Inf, z is unchanged and SetFloat64 returns nil and ErrNotFinite.
func (z *Int) SetFloat64(f float64) (*Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNotFinite
	}
	neg := f < 0
	f = math.Trunc(math.Abs(f))

	// Peel off one Word of magnitude at a time. Dividing by a power of two
	// and taking integer parts of values >= 1 are exact operations.
	const b = 1 << _W
	var m nat
	for f > 0 {
		q := math.Trunc(f / b)
		m = append(m, Word(f-q*b))
		f = q
	}
	z.v = z.v.setMagnitude(m, neg)
	return z, nil
}

// Float64 returns the float64 value nearest to x. If x is too large to be
// represented, the result is ±Inf.
func (x *Int) Float64() float64 {
	m, neg := x.v.magnitude()
	f := m.float(func(top uint64, exp int) float64 {
		return math.Ldexp(float64(top), exp)
	})
	if neg {
		return -f
	}
	return f
}

// Float32 returns the float32 value nearest to x. If x is too large to be
// represented, the result is ±Inf.
func (x *Int) Float32() float32 {
	m, neg := x.v.magnitude()
	f64 := m.float(func(top uint64, exp int) float64 {
		// rounding to float32 happens here, before scaling
		return math.Ldexp(float64(float32(top)), exp)
	})
	f := float32(f64)
	if f64 > math.MaxFloat32 {
		f = float32(math.Inf(1))
	}
	if neg {
		return -f
	}
	return f
}

// float returns ldexp(top, exp), where top holds the 64 most significant bits
// of x and exp the number of bits dropped below them. Bits below top only
// matter for rounding; they are folded into a sticky bit at bit 0 of top,
// which is below the rounding position of both float types.
func (x nat) float(ldexp func(top uint64, exp int) float64) float64 {
	n := x.bitLen()
	if n <= 64 {
		return ldexp(x.low64(), 0)
	}
	s := uint(n - 64)
	t := getNat(0)
	*t = t.shr(x, s)
	top := t.low64()
	putNat(t)
	if x.trailingZeroBits() < s {
		top |= 1
	}
	return ldexp(top, int(s))
}
