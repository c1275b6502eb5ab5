// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

// shl sets z to x << s and returns the reduced result.
func (z limbs) shl(x limbs, s uint) limbs {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	nw, nb := int(s/_W), s%_W
	n := m + nw + 1
	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(n)
	ext := x.ext()
	// bit pass from the top down so that z may alias x
	if nb == 0 {
		z[n-1] = ext
		copy(z[nw:n-1], x)
	} else {
		c := shlVU(z[nw:n-1], x, nb)
		z[n-1] = ext<<nb | c
	}
	clear(z[:nw])
	return z.reduce()
}

// sar sets z to x >> s, filling in copies of the sign bit, and returns the
// reduced result. For negative x, this rounds toward negative infinity.
func (z limbs) sar(x limbs, s uint) limbs {
	m := len(x)
	nw, nb := int(s/_W), s%_W
	ext := x.ext()
	if nw >= m {
		// all value bits shifted out
		return z.setInt64(int64(int(ext)))
	}
	// 0 <= nw < m

	n := m - nw
	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(n)
	if nb == 0 {
		copy(z, x[nw:])
	} else {
		shrVU(z, x[nw:], nb)
		z[n-1] |= ext << (_W - nb)
	}
	return z.reduce()
}
