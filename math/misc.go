package math

import (
	"math/bits"

	"github.com/db47h/exint"
)

// constants
var (
	one = exint.NewInt(1)
	two = exint.NewInt(2)
	ten = exint.NewInt(10)
)

// GCD sets z to the greatest common divisor of |x| and |y| and returns z.
// The result is never negative, and GCD(z, 0, 0) is 0.
func GCD(z, x, y *exint.Int) *exint.Int {
	a := new(exint.Int).Abs(x)
	b := new(exint.Int).Abs(y)
	var q exint.Int
	// Euclid: (a, b) = (b, a mod b) until b is 0
	for b.Sign() != 0 {
		q.QuoRem(a, b, a)
		a, b = b, a
	}
	return z.Set(a)
}

// Factorial sets z to n! and returns z.
func Factorial(z *exint.Int, n uint64) *exint.Int {
	return mulRange(z, 1, n)
}

// Binomial sets z to the binomial coefficient C(n, k) and returns z. The
// result is 0 if k > n.
func Binomial(z *exint.Int, n, k uint64) *exint.Int {
	if k > n {
		return z.SetInt64(0)
	}
	// reduce the number of multiplications by reducing k
	if k > n-k {
		k = n - k // C(n, k) == C(n, n-k)
	}
	// C(n, k) = n×(n-1)×...×(n-k+1) / k!
	// Each prefix n×...×(n-i+1) / i! is an integer, so divide as we go.
	var t, r exint.Int
	z.SetInt64(1)
	for i := uint64(1); i <= k; i++ {
		t.SetUint64(n - k + i)
		z.Mul(z, &t)
		z.QuoRem(z, t.SetUint64(i), &r)
	}
	return z
}

// mulRange sets z to the product of all integers in [a, b] and returns z.
// If a > b (empty range), the result is 1. Consecutive factors are
// accumulated in a uint64 as long as their product does not overflow.
func mulRange(z *exint.Int, a, b uint64) *exint.Int {
	z.SetInt64(1)
	if a > b {
		return z
	}
	var t exint.Int
	acc := uint64(1)
	for i := a; ; i++ {
		if hi, lo := bits.Mul64(acc, i); hi == 0 {
			acc = lo
		} else {
			z.Mul(z, t.SetUint64(acc))
			acc = i
		}
		if i == b {
			break
		}
	}
	return z.Mul(z, t.SetUint64(acc))
}
