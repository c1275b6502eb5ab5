// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package exint implements arbitrary-precision signed integers stored in two's
complement.

The API mirrors that of *big.Int. Unlike big.Int, which stores a sign and a
magnitude, an Int is a little-endian Word slice holding the two's complement
representation of its value. The sign is not stored: it is the most
significant bit of the last Word. Bitwise operations on negative values are
therefore applied directly to the Words, and addition and subtraction are a
single carry chain over both operands sign-extended to the same length.

Every Int observable by a caller is reduced: its last Word is never a mere
repetition of the sign of the Word below it. This makes the representation of
each value unique, so that Equal and Hash only need to look at the Words.

The zero value for an Int corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

	x := new(Int)  // x is an *Int of value 0

Alternatively, new Int values can be allocated and initialized with the
functions:

	func NewInt(x int64) *Int
	func New[T constraints.Integer](x T) *Int
	func NewFloat[F constraints.Float](f F) (*Int, error)

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Int) SetV(v V) *Int           // z = v
	func (z *Int) Unary(x *Int) *Int       // z = unary x
	func (z *Int) Binary(x, y *Int) *Int   // z = x binary y
	func (x *Int) Pred() P                 // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten
(and its memory reused). For instance, given three *Int values a, b and c, the
invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever value
was held in c before. Operations permit aliasing of parameters, so it is
perfectly ok to write

	sum.Add(sum, x)

to accumulate values x in a sum.

Division truncates toward zero, like Go's / and % operators: the remainder has
the sign of the dividend. Right shifts are arithmetic and round toward negative
infinity. Division by zero and the square root of a negative number panic with
an ErrDomain; the calc sub-package turns these panics into sticky errors.

Conversions from and to strings use the digits 0-9 and a-z (or A-Z) in bases
2 to 36 with an optional leading '-'. A '+' sign, base prefixes and digit
separators are not accepted. *Int implements fmt.Formatter, fmt.Scanner,
encoding.TextMarshaler and json.Marshaler as well as their decoding
counterparts.

Word-level multiplication and division use the math/bits intrinsics. Building
with the exint_pure_go tag selects portable half-word implementations instead,
and the exint_debug tag enables internal consistency checks.
*/
package exint
