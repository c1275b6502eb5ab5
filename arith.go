// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides Go implementations of elementary multi-precision
// arithmetic operations on word vectors. The word-level multiply and divide
// have two implementations: the _g versions below work on half words and
// are used with the exint_pure_go build tag; the default build maps mulWW
// and divWW to the math/bits intrinsics (see arith_decl.go).

package exint

import "math/bits"

// A Word represents a single limb of a multi-precision integer.
type Word uint

const (
	_S = _W / 8 // word size in bytes

	_W = bits.UintSize // word size in bits
	_M = 1<<_W - 1     // digit mask

	_W2 = _W / 2   // half word size in bits
	_B2 = 1 << _W2 // half digit base
	_M2 = _B2 - 1  // half digit mask
)

// ----------------------------------------------------------------------------
// Elementary operations on words

// z0 + c1<<_W = x+y+c, with c == 0 or 1
func addWW_g(x, y, c Word) (z0, c1 Word) {
	yc := y + c
	z0 = x + yc
	if z0 < x || yc < y {
		c1 = 1
	}
	return
}

// z0 - c1<<_W = x-y-c, with c == 0 or 1
func subWW_g(x, y, c Word) (z0, c1 Word) {
	yc := y + c
	z0 = x - yc
	if z0 > x || yc < y {
		c1 = 1
	}
	return
}

// z1<<_W + z0 = x*y
// Adapted from Warren, Hacker's Delight, p. 132.
func mulWW_g(x, y Word) (z1, z0 Word) {
	x0 := x & _M2
	x1 := x >> _W2
	y0 := y & _M2
	y1 := y >> _W2
	w0 := x0 * y0
	t := x1*y0 + w0>>_W2
	w1 := t & _M2
	w2 := t >> _W2
	w1 += x0 * y1
	z1 = x1*y1 + w2 + w1>>_W2
	z0 = x * y
	return
}

// q = (u1<<_W + u0 - r)/v
// Adapted from Warren, Hacker's Delight, p. 152.
//
// v must be normalized (its most significant bit set) and u1 < v so that the
// quotient fits in a single Word. Each half-word estimate is at most 2 too
// large, which bounds both correction loops.
func divWW_g(u1, u0, v Word) (q, r Word) {
	if debugExint && (v>>(_W-1) == 0 || u1 >= v) {
		panic(assertf("divWW: precondition violated: u1 = %#x, v = %#x", u1, v))
	}

	vn1 := v >> _W2
	vn0 := v & _M2
	un1 := u0 >> _W2
	un0 := u0 & _M2

	q1 := u1 / vn1
	rhat := u1 - q1*vn1
	for q1 >= _B2 || q1*vn0 > _B2*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= _B2 {
			break
		}
	}

	un21 := u1*_B2 + un1 - q1*v
	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= _B2 || q0*vn0 > _B2*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= _B2 {
			break
		}
	}

	return q1*_B2 + q0, un21*_B2 + un0 - q0*v
}

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	z1, zz0 := mulWW(x, y)
	if z0 = zz0 + c; z0 < zz0 {
		z1++
	}
	return
}

// nlz returns the number of leading zeros in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// ----------------------------------------------------------------------------
// Elementary operations on word vectors. All of them require
// len(z) == len(x) (== len(y) where applicable).

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = addWW(x[i], y[i], c)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = subWW(x[i], y[i], c)
	}
	return
}

// shlVU sets z to x<<s for 0 <= s < _W and returns the bits shifted out of
// the top word. z and x may be the same slice.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	n := len(z)
	if n == 0 {
		return
	}
	ŝ := _W - s
	w1 := x[n-1]
	c = w1 >> ŝ
	for i := n - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return
}

// shrVU sets z to x>>s for 0 <= s < _W, shifting in zeros, and returns the
// bits shifted out of the bottom word (in the top bits of c). z and x may be
// the same slice.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	n := len(z)
	if n == 0 {
		return
	}
	ŝ := _W - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < n-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[n-1] = w1 >> s
	return
}

// mulAddVWW sets z to x*y + r and returns the high word of the result.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// cmpVV compares x and y as unsigned numbers of equal length, most
// significant word first.
func cmpVV(x, y []Word) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}
