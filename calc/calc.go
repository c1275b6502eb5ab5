// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc provides sticky error handling for exint.Int arithmetic.
//
// Operators that set a receiver z to function of other arguments like:
//
//	func (c *Calc) UnaryOp(z, x *exint.Int) *exint.Int
//	func (c *Calc) BinaryOp(z, x, y *exint.Int) *exint.Int
//
// set z to the result of z.Op(args) and return z.
//
// A Calc catches domain errors: if an operation panics with an
// exint.ErrDomain (division by zero, square root of a negative number), the
// operation silently succeeds and leaves z unchanged. Further operations with
// the Calc will be no-ops (they simply return the receiver z) until
// (*Calc).Err is called to check for errors.
package calc

import (
	"github.com/cockroachdb/errors"
	"github.com/db47h/exint"
	"github.com/db47h/exint/math"
)

// A Calc is a wrapper around Ints that records the first domain error of a
// sequence of operations.
type Calc struct {
	err error
}

// New returns a new *exint.Int set to x.
func (c *Calc) New(x int64) *exint.Int {
	return exint.NewInt(x)
}

// NewString returns a new *exint.Int set to the value of s in base 10. If s
// is not a valid integer, the error is recorded and the result is 0.
func (c *Calc) NewString(s string) *exint.Int {
	z := new(exint.Int)
	if c.err != nil {
		return z
	}
	if _, err := z.Parse(s, 10); err != nil {
		c.err = err
	}
	return z
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Calc) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// catch recovers an exint.ErrDomain panic into c.err. Other panics are
// propagated.
func (c *Calc) catch() {
	r := recover()
	if r == nil {
		return
	}
	var d exint.ErrDomain
	if err, ok := r.(error); ok && errors.As(err, &d) {
		c.err = errors.WithStack(d)
		return
	}
	panic(r)
}

// Add sets z to the sum x+y and returns z.
func (c *Calc) Add(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
func (c *Calc) Sub(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Sub(x, y)
}

// Mul sets z to the product x×y and returns z.
func (c *Calc) Mul(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Mul(x, y)
}

// Quo sets z to the quotient x/y, truncated toward zero, and returns z.
func (c *Calc) Quo(z, x, y *exint.Int) (r *exint.Int) {
	if c.err != nil {
		return z
	}
	r = z // result if the operation panics
	defer c.catch()
	return z.Quo(x, y)
}

// Rem sets z to the remainder x%y and returns z. The remainder has the sign
// of x.
func (c *Calc) Rem(z, x, y *exint.Int) (r *exint.Int) {
	if c.err != nil {
		return z
	}
	r = z // result if the operation panics
	defer c.catch()
	return z.Rem(x, y)
}

// QuoRem sets q to the quotient x/y and r to the remainder x%y and returns
// the pair (q, r).
func (c *Calc) QuoRem(q, r, x, y *exint.Int) (q1, r1 *exint.Int) {
	if c.err != nil {
		return q, r
	}
	q1, r1 = q, r
	defer c.catch()
	return q.QuoRem(x, y, r)
}

// Lsh sets z to x << n and returns z.
func (c *Calc) Lsh(z, x *exint.Int, n uint) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Lsh(x, n)
}

// Rsh sets z to x >> n (rounding toward negative infinity) and returns z.
func (c *Calc) Rsh(z, x *exint.Int, n uint) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Rsh(x, n)
}

// And sets z to x & y and returns z.
func (c *Calc) And(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.And(x, y)
}

// Or sets z to x | y and returns z.
func (c *Calc) Or(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Or(x, y)
}

// Xor sets z to x ^ y and returns z.
func (c *Calc) Xor(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Xor(x, y)
}

// Not sets z to ^x and returns z.
func (c *Calc) Not(z, x *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Not(x)
}

// Neg sets z to -x and returns z.
func (c *Calc) Neg(z, x *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Neg(x)
}

// Abs sets z to |x| and returns z.
func (c *Calc) Abs(z, x *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return z.Abs(x)
}

// Sqrt sets z to ⌊√x⌋ and returns z.
func (c *Calc) Sqrt(z, x *exint.Int) (r *exint.Int) {
	if c.err != nil {
		return z
	}
	r = z // result if the operation panics
	defer c.catch()
	return z.Sqrt(x)
}

// Pow sets z to x**n and returns z.
func (c *Calc) Pow(z, x *exint.Int, n uint) *exint.Int {
	if c.err != nil {
		return z
	}
	return math.Pow(z, x, n)
}

// GCD sets z to the greatest common divisor of |x| and |y| and returns z.
func (c *Calc) GCD(z, x, y *exint.Int) *exint.Int {
	if c.err != nil {
		return z
	}
	return math.GCD(z, x, y)
}
