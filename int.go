// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// An Int represents a signed multi-precision integer.
// The zero value for an Int represents the value 0.
//
// Operations always take pointer arguments (*Int) rather
// than Int values, and each unique Int value requires
// its own unique *Int pointer. To "copy" an Int value,
// an existing (or newly allocated) Int must be set to
// a new value using the Int.Set method; shallow copies
// of Ints are not supported and may lead to errors.
type Int struct {
	v limbs // two's complement, reduced
}

var intOne = &Int{limbs{1}}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Int) Sign() int {
	if len(x.v) == 0 {
		return 0
	}
	if x.v.neg() {
		return -1
	}
	return 1
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	z.v = z.v.setInt64(x)
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.v = z.v.setUint64(x)
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.v = z.v.set(x.v)
	}
	return z
}

// Bits provides raw (unchecked but fast) access to x by returning its two's
// complement representation as a little-endian Word slice. The result and x
// share the same underlying array. The slice is reduced: its last Word is
// never a redundant sign extension of the Word below it.
func (x *Int) Bits() []Word {
	return x.v
}

// SetBits provides raw (unchecked but fast) access to z by setting its value
// to buf, interpreted as a little-endian two's complement number whose sign is
// the most significant bit of the last Word, and returning z. The result and
// buf share the same underlying array.
func (z *Int) SetBits(buf []Word) *Int {
	z.v = limbs(buf).reduce()
	return z
}

// SetUnsignedBits sets z to the value of buf interpreted as a little-endian
// unsigned magnitude and returns z. Unlike SetBits, buf is copied.
func (z *Int) SetUnsignedBits(buf []Word) *Int {
	n := len(buf)
	if n > 0 && buf[n-1]>>(_W-1) != 0 {
		// the top bit would be read as a sign bit
		if alias(z.v, buf) {
			z.v = nil
		}
		z.v = z.v.make(n + 1)
		copy(z.v, buf)
		z.v[n] = 0
		return z
	}
	z.v = z.v.set(buf).reduce()
	return z
}

// LimbLen returns the number of Words in the reduced representation of x.
func (x *Int) LimbLen() int {
	return len(x.v)
}

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Int) BitLen() int {
	if !x.v.neg() {
		return nat(x.v).norm().bitLen()
	}
	m, _ := x.v.magnitude()
	return m.bitLen()
}

// Bit returns the value of the i'th bit of the two's complement
// representation of x. That is, it returns (x>>i)&1.
func (x *Int) Bit(i uint) uint {
	if j := i / _W; j < uint(len(x.v)) {
		return uint(x.v[j]>>(i%_W)) & 1
	}
	return uint(x.v.ext() & 1)
}

// Int64 returns the int64 representation of x.
// If x cannot be represented in an int64, the result is undefined.
func (x *Int) Int64() int64 {
	return int64(x.v.low64())
}

// Uint64 returns the uint64 representation of x.
// If x cannot be represented in a uint64, the result is undefined.
func (x *Int) Uint64() uint64 {
	return x.v.low64()
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	return len(x.v) <= 64/_W
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	if x.v.neg() {
		return false
	}
	n := len(x.v)
	return n <= 64/_W || n == 64/_W+1 && x.v[n-1] == 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) int {
	return x.v.cmp(y.v)
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
func (x *Int) CmpAbs(y *Int) int {
	xm, _ := x.v.magnitude()
	ym, _ := y.v.magnitude()
	return xm.cmp(ym)
}

// Equal reports whether x == y. Since both are reduced, this is a plain
// comparison of their Words.
func (x *Int) Equal(y *Int) bool {
	if len(x.v) != len(y.v) {
		return false
	}
	for i, w := range x.v {
		if y.v[i] != w {
			return false
		}
	}
	return true
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	z.v = z.v.add(x.v, y.v)
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	z.v = z.v.sub(x.v, y.v)
	return z
}

// Inc sets z to z+1 and returns z.
func (z *Int) Inc() *Int {
	return z.Add(z, intOne)
}

// Dec sets z to z-1 and returns z.
func (z *Int) Dec() *Int {
	return z.Sub(z, intOne)
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.v = z.v.negate(x.v)
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Int) Abs(x *Int) *Int {
	if x.v.neg() {
		return z.Neg(x)
	}
	return z.Set(x)
}

// Mul sets z to the product x*y and returns z.
//
// Both operands are sign-normalized before multiplying their magnitudes and
// the sign of the product is applied afterward.
func (z *Int) Mul(x, y *Int) *Int {
	xm, xneg := x.v.magnitude()
	ym, yneg := y.v.magnitude()
	p := getNat(0)
	*p = p.mul(xm, ym)
	z.v = z.v.setMagnitude(*p, xneg != yneg)
	putNat(p)
	return z
}

// Quo sets z to the quotient x/y for y != 0 and returns z.
// If y == 0, a division-by-zero ErrDomain panic occurs.
// Quo implements truncated division (like Go); see QuoRem for more details.
func (z *Int) Quo(x, y *Int) *Int {
	var r Int
	z.QuoRem(x, y, &r)
	return z
}

// Rem sets z to the remainder x%y for y != 0 and returns z.
// If y == 0, a division-by-zero ErrDomain panic occurs.
// Rem implements truncated modulus (like Go); see QuoRem for more details.
func (z *Int) Rem(x, y *Int) *Int {
	var q Int
	q.QuoRem(x, y, z)
	return z
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y
// and returns the pair (z, r) for y != 0.
// If y == 0, a division-by-zero ErrDomain panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder takes the sign of x and the sign of the quotient is the
// exclusive or of the operand signs. z and r must be distinct.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	xm, xneg := x.v.magnitude()
	ym, yneg := y.v.magnitude()
	qp, rp := getNat(0), getNat(0)
	*qp, *rp = qp.div(*rp, xm, ym)
	z.v = z.v.setMagnitude(*qp, xneg != yneg)
	r.v = r.v.setMagnitude(*rp, xneg)
	putNat(qp)
	putNat(rp)
	return z, r
}

// And sets z = x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	z.v = z.v.and(x.v, y.v)
	return z
}

// AndNot sets z = x &^ y and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	t := getLimbs(0)
	*t = t.not(y.v)
	z.v = z.v.and(x.v, *t)
	putLimbs(t)
	return z
}

// Or sets z = x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	z.v = z.v.or(x.v, y.v)
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	z.v = z.v.xor(x.v, y.v)
	return z
}

// Not sets z = ^x and returns z.
func (z *Int) Not(x *Int) *Int {
	z.v = z.v.not(x.v)
	return z
}

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.v = z.v.shl(x.v, n)
	return z
}

// Rsh sets z = x >> n and returns z. The shift is arithmetic: it rounds
// toward negative infinity.
func (z *Int) Rsh(x *Int, n uint) *Int {
	z.v = z.v.sar(x.v, n)
	return z
}

// Hash returns a 64-bit hash of x. Equal values have equal hashes,
// regardless of the platform's word size.
func (x *Int) Hash() uint64 {
	var buf [64]byte
	b := buf[:0]
	if n := len(x.v) * _S; n > len(buf) {
		b = make([]byte, 0, n)
	}
	for _, w := range x.v {
		if _W == 32 {
			b = binary.LittleEndian.AppendUint32(b, uint32(w))
		} else {
			b = binary.LittleEndian.AppendUint64(b, uint64(w))
		}
	}
	// strip bytes that only repeat the sign of the byte below them
	for n := len(b); n > 0; n-- {
		top := b[n-1]
		if top != 0 && top != 0xff {
			break
		}
		var below byte
		if n > 1 {
			below = byte(int8(b[n-2]) >> 7)
		}
		if top != below {
			break
		}
		b = b[:n-1]
	}
	return xxhash.Sum64(b)
}

// TrailingZeroBits returns the number of consecutive least significant zero
// bits of |x|.
func (x *Int) TrailingZeroBits() uint {
	for i, w := range x.v {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros(uint(w)))
		}
	}
	return 0
}

// validate checks that x is reduced.
func (x *Int) validate() error {
	if !x.v.reduced() {
		return assertf("%d words, last word %#x duplicates the sign of the word below", len(x.v), x.v[len(x.v)-1])
	}
	return nil
}
