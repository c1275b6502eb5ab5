// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

// limbs is a signed integer x stored as a little-endian slice of Words:
//
//	x = x[n-1]*_B^(n-1) + ... + x[1]*_B + x[0]
//
// interpreted as an n*_W bit two's complement number. The sign of x is the
// most significant bit of x[n-1]. The empty (or nil) slice represents 0.
//
// A limbs value is reduced if its most significant word does not merely
// repeat the sign prefix of the word below it, i.e. the slice is the shortest
// one whose two's complement interpretation equals the value. During
// arithmetic operations non-reduced values may occur but are always reduced
// before returning the final result, which makes the representation of every
// value unique.
type limbs []Word

// ext returns the sign prefix of x: 0 if x >= 0, _M if x < 0.
func (x limbs) ext() Word {
	if len(x) == 0 {
		return 0
	}
	return signExt(x[len(x)-1])
}

// signExt returns the Word with all bits set to the most significant bit of w.
func signExt(w Word) Word {
	return Word(int(w) >> (_W - 1))
}

func (x limbs) neg() bool {
	return len(x) > 0 && x[len(x)-1]>>(_W-1) != 0
}

// reduce drops the most significant words of z that duplicate the sign
// prefix implied by the word below them.
func (z limbs) reduce() limbs {
	i := len(z)
	for i > 0 {
		top := z[i-1]
		if top != 0 && top != _M {
			break
		}
		// sign prefix of z[:i-1]
		var below Word
		if i > 1 {
			below = signExt(z[i-2])
		}
		if top != below {
			// dropping top would flip the sign
			break
		}
		i--
	}
	return z[:i]
}

func (x limbs) reduced() bool {
	return len(x.reduce()) == len(x)
}

func (z limbs) make(n int) limbs {
	return limbs(nat(z).make(n))
}

func (z limbs) set(x limbs) limbs {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// cmp compares reduced x and y.
func (x limbs) cmp(y limbs) int {
	xn, yn := x.neg(), y.neg()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	// x and y have the same sign
	if m, n := len(x), len(y); m != n {
		// for non-negative values, the longer one is larger; for negative
		// values, the longer one is more negative.
		if (m < n) != xn {
			return -1
		}
		return 1
	}
	return cmpVV(x, y)
}

// setUint64 sets z to x, adding a zero sign limb when the most significant
// bit of the top word is set.
func (z limbs) setUint64(x uint64) limbs {
	if x == 0 {
		return z[:0]
	}
	if _W == 32 && x>>32 != 0 {
		z = z.make(3)
		z[0], z[1], z[2] = Word(uint32(x)), Word(uint32(x>>32)), 0
		return z.reduce()
	}
	// x fits in a single Word
	z = z.make(2)
	z[0], z[1] = Word(x), 0
	return z.reduce()
}

func (z limbs) setInt64(x int64) limbs {
	if x >= 0 {
		return z.setUint64(uint64(x))
	}
	if _W == 32 && int64(int32(x)) != x {
		z = z.make(2)
		z[0], z[1] = Word(uint32(x)), Word(uint32(uint64(x)>>32))
		return z.reduce()
	}
	// x sign-extends from a single Word
	z = z.make(1)
	z[0] = Word(x)
	return z
}

// low64 returns the 64 least significant bits of the two's complement
// representation of x.
func (x limbs) low64() uint64 {
	ext := x.ext()
	w0, w1 := ext, ext
	if len(x) > 0 {
		w0 = x[0]
	}
	if len(x) > 1 {
		w1 = x[1]
	}
	if _W == 32 {
		return uint64(w1)<<32 | uint64(w0)
	}
	return uint64(w0)
}

// magnitude returns |x| as a nat and whether x is negative. The result
// shares x's storage when x >= 0 and must be treated as read-only.
func (x limbs) magnitude() (m nat, neg bool) {
	if !x.neg() {
		return nat(x).norm(), false
	}
	m = make(nat, len(x))
	for i, w := range x {
		m[i] = ^w
	}
	addOne(m)
	return m.norm(), true
}

// setMagnitude sets z to -m if neg is set, m otherwise.
func (z limbs) setMagnitude(m nat, neg bool) limbs {
	n := len(m)
	if alias(z, m) {
		z = nil
	}
	z = z.make(n + 1)
	copy(z, m)
	z[n] = 0
	if neg {
		for i, w := range z {
			z[i] = ^w
		}
		addOne(z)
	}
	return z.reduce()
}

// addOne adds 1 to z in place, ignoring the carry out of the top word.
func addOne(z []Word) {
	for i := range z {
		z[i]++
		if z[i] != 0 {
			return
		}
	}
}

// getLimbs returns a *limbs of len n. The contents may not be zero.
func getLimbs(n int) *limbs {
	return (*limbs)(getNat(n))
}

func putLimbs(x *limbs) {
	putNat((*nat)(x))
}
