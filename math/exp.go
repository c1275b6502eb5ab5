package math

import (
	"github.com/db47h/exint"
)

// Pow sets z to x**n and returns z. Pow(z, x, 0) is 1 for any x, including 0.
func Pow(z, x *exint.Int, n uint) *exint.Int {
	if n == 0 {
		return z.SetInt64(1)
	}
	// pow may use z as scratch space; work on a copy if it aliases x
	if z == x {
		x = new(exint.Int).Set(x)
	}
	return pow(z, x, n)
}

// pow computes x**n by repeated squaring (right-to-left binary method).
// z and x must be distinct and n > 0.
func pow(z, x *exint.Int, n uint) *exint.Int {
	var (
		t = new(exint.Int)
		y = new(exint.Int).SetInt64(1)
	)
	z.Set(x)

	for n > 1 {
		if n%2 != 0 {
			y.Mul(t.Set(y), z)
		}
		z.Mul(t.Set(z), t)
		switch {
		case z.Sign() == 0:
			return z
		case z.Equal(one):
			// x is ±1 and every further square is 1
			return z.Set(y)
		}
		n /= 2
	}
	if y.Equal(one) {
		return z
	}
	return z.Mul(t.Set(z), y)
}
