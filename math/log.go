package math

import (
	stdmath "math"

	"github.com/db47h/exint"
)

// Log returns ⌊log_b(x)⌋, the largest k such that b**k <= x.
//
// Log panics with an exint.ErrDomain wrapping exint.ErrOutOfDomain if x <= 0
// or b < 2.
func Log(x, b *exint.Int) int {
	if x.Sign() <= 0 || b.Cmp(two) < 0 {
		panic(exint.ErrDomain{Op: "log", Err: exint.ErrOutOfDomain})
	}
	if x.Cmp(b) < 0 {
		return 0
	}

	// Estimate k from the bit lengths. 2**(n-1) <= x < 2**n, so the estimate
	// is off by at most a few units and is corrected below.
	lb := stdmath.Log2(b.Float64())
	k := int(float64(x.BitLen()-1) / lb)
	if k > 0 {
		k--
	}
	p := Pow(new(exint.Int), b, uint(k))
	t := new(exint.Int)
	// p = b**k <= x
	for t.Mul(p, b).Cmp(x) <= 0 {
		p.Set(t)
		k++
	}
	return k
}
