// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !exint_pure_go

package exint

import "math/bits"

// The math/bits functions below are compiler intrinsics on all supported
// 64-bit platforms and provide the native double-width product and quotient.

func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	return Word(hi), Word(lo)
}

func divWW(x1, x0, y Word) (q, r Word) {
	if debugExint && y>>(_W-1) == 0 {
		panic(assertf("divWW: divisor %#x is not normalized", y))
	}
	qq, rr := bits.Div(uint(x1), uint(x0), uint(y))
	return Word(qq), Word(rr)
}

func addWW(x, y, c Word) (z0, c1 Word) {
	s, cc := bits.Add(uint(x), uint(y), uint(c))
	return Word(s), Word(cc)
}

func subWW(x, y, c Word) (z0, c1 Word) {
	d, cc := bits.Sub(uint(x), uint(y), uint(c))
	return Word(d), Word(cc)
}
