package math

import "github.com/db47h/exint"

// Sqrt sets z to ⌊√x⌋ and returns z. It panics with an exint.ErrDomain if x
// is negative.
//
// This function is a proxy for z.Sqrt(x)
func Sqrt(z, x *exint.Int) *exint.Int {
	return z.Sqrt(x)
}

// QuoRem sets q to the quotient x/y and r to the remainder x%y, truncated
// toward zero, and returns the pair (q, r). It panics with an exint.ErrDomain
// if y is 0.
//
// This function is a proxy for q.QuoRem(x, y, r)
func QuoRem(q, r, x, y *exint.Int) (*exint.Int, *exint.Int) {
	return q.QuoRem(x, y, r)
}
