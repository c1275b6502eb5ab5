// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements long division of nats (Knuth, TAOCP Vol. 2, 4.3.1,
// Algorithm D).

package exint

// div returns q, r such that q = ⌊u/v⌋ and r = u%v = u - q·v.
// It uses z and z2 as the storage for q and r.
// v must not be zero.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic(ErrDomain{"div", ErrDivisionByZero})
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	return z.divLarge(z2, u, v)
}

// divLarge returns q, r such that q = ⌊uIn/vIn⌋ and r = uIn%vIn = uIn - q·vIn.
// uIn >= vIn > 0. It uses z and z2 as the storage for q and r.
func (z nat) divLarge(z2, uIn, vIn nat) (q, r nat) {
	n := len(vIn)

	// Scale the inputs so vIn's top bit is 1. vIn is copied first since z2
	// may alias it.
	shift := nlz(vIn[n-1])
	vp := getNat(n)
	v := *vp
	shlVU(v, vIn, shift)

	if alias(z2, uIn) && !same(z2, uIn) {
		z2 = nil
	}
	// room for the bits shifted out of uIn and one more zero word
	u := z2.make(len(uIn) + 2)[:len(uIn)]
	if c := shlVU(u, uIn, shift); c != 0 {
		u = append(u, c)
	}
	// Make sure that the top n words of u are less than v, so that every
	// quotient digit fits in a single word.
	if u[len(u)-1] >= v[n-1] {
		u = append(u, 0)
	}
	m := len(u) - n

	if alias(z, u) || alias(z, vIn) {
		z = nil
	}
	q = z.make(m)

	q.divBasic(u, v)
	putNat(vp)

	q = q.norm()

	// Undo scaling of remainder.
	shrVU(u[:n], u[:n], shift)
	r = u[:n].norm()

	return q, r
}

// divBasic implements Algorithm D. It overwrites q with ⌊u/v⌋ and
// overwrites u with the remainder r. v must be normalized (top bit set),
// the top n words of u must be less than v and len(q) == len(u)-len(v).
func (q nat) divBasic(u, v nat) {
	n := len(v)
	m := len(u) - n

	qhatvp := getNat(n + 1)
	qhatv := *qhatvp

	vn1 := v[n-1]

	// Compute each digit of quotient.
	for j := m - 1; j >= 0; j-- {
		w := u[j : j+n+1] // current window of the remainder
		ujn := w[n]

		// Compute the 2-by-1 guess q̂. By the invariant ujn <= vn1; when they
		// are equal, the guess is the max digit.
		qhat := Word(_M)
		if ujn != vn1 {
			qhat, _ = divWW(ujn, w[n-1], vn1)
		}

		// Compute q̂·v and correct q̂ while the product exceeds the window.
		// Since v is normalized, q̂ is at most 2 too large.
		qhatv[n] = mulAddVWW(qhatv[:n], v, qhat, 0)
		for k := 0; cmpVV(qhatv, w) > 0; k++ {
			if debugExint && k == 2 {
				panic(assertf("divBasic: more than 2 corrections for digit %d", j))
			}
			qhat--
			qhatv[n] -= subVV(qhatv[:n], qhatv[:n], v)
		}

		// Subtract q̂·v from the window.
		if c := subVV(w, w, qhatv); debugExint && c != 0 {
			panic(assertf("divBasic: negative remainder for digit %d", j))
		}

		q[j] = qhat
	}

	putNat(qhatvp)
}
