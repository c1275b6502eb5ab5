// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

// Sqrt sets z to ⌊√x⌋, the largest integer such that z² ≤ x, and returns z.
// It panics with an ErrDomain wrapping ErrNegativeSqrt if x is negative.
func (z *Int) Sqrt(x *Int) *Int {
	if debugExint {
		if err := x.validate(); err != nil {
			panic(err)
		}
	}
	switch x.Sign() {
	case -1:
		panic(ErrDomain{"sqrt", ErrNegativeSqrt})
	case 0:
		return z.SetInt64(0)
	}

	// Start with a value known to be too large and repeat
	// "t = ⌊(t + ⌊x/t⌋)/2⌋" until it stops getting smaller.
	// 2**⌈n/2⌉ > √x for an n-bit x.
	t1 := new(Int).Lsh(intOne, uint(x.BitLen()+1)/2)
	t2 := new(Int)
	var r Int
	for n := 0; ; n++ {
		t2.QuoRem(x, t1, &r)
		t2.Add(t2, t1)
		t2.Rsh(t2, 1)
		if t2.Cmp(t1) >= 0 {
			// t1 is the floor of the square root once the sequence stops
			// decreasing.
			return z.Set(t1)
		}
		t1, t2 = t2, t1
		if debugExint && n > x.BitLen()+2 {
			panic(assertf("Sqrt: no convergence after %d iterations", n))
		}
	}
}
