package math

import (
	"github.com/db47h/exint"
)

// Pi sets z to ⌊π×10**n⌋, the first n+1 decimal digits of π, and returns z.
//
// The value is computed with Machin's formula
//
//	π = 16×arctan(1/5) - 4×arctan(1/239)
//
// in fixed point with a few guard digits. The truncation error of the series
// is bounded; if the digits of π following the n-th one are close enough to
// a run of 9s that the bound straddles a digit boundary, the computation is
// repeated with more guard digits.
func Pi(z *exint.Int, n uint) *exint.Int {
	g := uint(4)
	for d := n; d > 0; d /= 10 {
		g++
	}
	var a, b, e, lo, hi exint.Int
	for {
		unity := Pow(new(exint.Int), ten, n+g)
		ka := arccot(&a, 5, unity)
		kb := arccot(&b, 239, unity)
		a.Lsh(&a, 4) // 16×arctan(1/5)
		b.Lsh(&b, 2) // 4×arctan(1/239)
		a.Sub(&a, &b)

		// |a - π×unity| < e
		e.SetInt64(16*(2*ka+3) + 4*(2*kb+3))
		scale := Pow(&b, ten, g)
		lo.Quo(lo.Sub(&a, &e), scale)
		hi.Quo(hi.Add(&a, &e), scale)
		if lo.Equal(&hi) {
			return z.Set(&lo)
		}
		g += 8
	}
}

// arccot sets z to an approximation of arctan(1/x)×unity and returns the
// number of series terms k added after the first one. Every term is
// truncated by less than 2 units and the omitted tail is less than 1 unit,
// so the error is less than 2k+3.
//
//	arctan(1/x) = 1/x - 1/(3x³) + 1/(5x⁵) - ...
func arccot(z *exint.Int, x int64, unity *exint.Int) int64 {
	var (
		x2   = exint.NewInt(x * x)
		pow  = new(exint.Int).Quo(unity, exint.NewInt(x)) // unity/x**(2k+1)
		term = new(exint.Int)
		d    = new(exint.Int)
	)
	z.Set(pow)
	for k := int64(1); ; k++ {
		pow.Quo(pow, x2)
		if pow.Sign() == 0 {
			return k - 1
		}
		term.Quo(pow, d.SetInt64(2*k+1))
		if k%2 != 0 {
			z.Sub(z, term)
		} else {
			z.Add(z, term)
		}
	}
}
