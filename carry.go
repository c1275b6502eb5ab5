// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

// A limbOp is applied word by word by combine. c is the incoming carry or
// borrow and c1 the outgoing one; carry-free operations ignore c and return
// 0.
type limbOp func(x, y, c Word) (z, c1 Word)

func andW(x, y, _ Word) (Word, Word) { return x & y, 0 }
func orW(x, y, _ Word) (Word, Word)  { return x | y, 0 }
func xorW(x, y, _ Word) (Word, Word) { return x ^ y, 0 }

// combine sets z to x op y, where op is applied to x and y sign-extended to
// the same length, and returns the reduced result. If carries is set, op
// propagates a carry (or borrow) from word to word, and one extra word,
// op(sign prefix of x, sign prefix of y, carry), captures a possible change
// of the result's sign.
//
// z may alias x or y.
func (z limbs) combine(x, y limbs, op limbOp, carries bool) limbs {
	m, n := len(x), len(y)
	sx, sy := x.ext(), y.ext()
	if m < n {
		m = n
	}
	// m = max(len(x), len(y))
	n = m
	if carries {
		n++
	}
	if (alias(z, x) && !same(z, x)) || (alias(z, y) && !same(z, y)) {
		z = nil
	}
	z = z.make(n)

	var c Word
	for i := 0; i < m; i++ {
		xi, yi := sx, sy
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		z[i], c = op(xi, yi, c)
	}
	if carries {
		z[m], _ = op(sx, sy, c)
	}
	return z.reduce()
}

// same reports whether x and y start at the same Word, so that writing z[i]
// never clobbers a word of x or y that is read later.
func same(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[:1][0] == &y[:1][0]
}

func (z limbs) add(x, y limbs) limbs {
	return z.combine(x, y, addWW, true)
}

func (z limbs) sub(x, y limbs) limbs {
	return z.combine(x, y, subWW, true)
}

func (z limbs) and(x, y limbs) limbs {
	return z.combine(x, y, andW, false)
}

func (z limbs) or(x, y limbs) limbs {
	return z.combine(x, y, orW, false)
}

func (z limbs) xor(x, y limbs) limbs {
	return z.combine(x, y, xorW, false)
}

// not sets z to ^x, i.e. -x-1.
func (z limbs) not(x limbs) limbs {
	return z.combine(x, limbs{_M}, xorW, false)
}

// negate sets z to -x.
func (z limbs) negate(x limbs) limbs {
	return z.combine(nil, x, subWW, true)
}
