// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

// mul sets z to x*y using schoolbook multiplication. The shorter operand
// drives the outer loop.
func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return z.mul(y, x)
	}
	if n == 0 {
		return z[:0]
	}
	// m >= n > 0

	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}
	z = z.make(m + n)
	clear(z)

	for i, yi := range y {
		if yi == 0 {
			continue
		}
		var c Word
		for j, xj := range x {
			// xj*yi + c + z[i+j] < _B**2, no overflow
			hi, lo := mulAddWWW(xj, yi, c)
			var cc Word
			z[i+j], cc = addWW(lo, z[i+j], 0)
			c = hi + cc
		}
		// the carry may ripple through any number of words
		for k := i + m; c != 0; k++ {
			z[k], c = addWW(z[k], c, 0)
		}
	}

	return z.norm()
}
