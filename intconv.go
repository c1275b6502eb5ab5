// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string conversion functions.

package exint

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Text returns the string representation of x in the given base.
// Base must be between 2 and 36, inclusive. The result uses the
// lower-case letters 'a' to 'z' for digit values >= 10. No base
// prefix (such as "0x") is added to the string. If x is a nil
// pointer it returns "<nil>".
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.v.itoa(base))
}

// Append appends the string representation of x, as generated by
// x.Text(base), to buf and returns the extended buffer.
func (x *Int) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.v.itoa(base)...)
}

// String returns the decimal representation of x as generated by
// x.Text(10).
func (x *Int) String() string {
	return x.Text(10)
}

// itoa converts x to an ASCII representation in the given base by repeatedly
// dividing its magnitude by the largest power of base that fits in a Word.
// It prepends a '-' if x is negative.
func (x limbs) itoa(base int) []byte {
	if base < 2 || base > MaxBase {
		panic("invalid base")
	}

	// x == 0
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	m, neg := x.magnitude()

	// allocate buffer for conversion
	i := int(float64(m.bitLen())/math.Log2(float64(base))) + 2 // one spare digit
	if neg {
		i++
	}
	s := make([]byte, i)

	b := Word(base)
	bb, ndigits := maxPow(b)
	d := nat{bb}

	// preserve x, create local copy for use by the divisions
	q := nat(nil).set(m)
	var r nat
	for len(q) > 0 {
		// extract least significant, base bb "digit"
		q, r = q.div(r, q, d)
		var w Word
		if len(r) > 0 {
			w = r[0]
		}
		for j := 0; j < ndigits && i > 0; j++ {
			i--
			s[i] = digits[w%b]
			w /= b
		}
	}

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	for s[i] == '0' {
		i++
	}

	if neg {
		i--
		s[i] = '-'
	}

	return s[i:]
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = intOne // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the formats
// 'b' (binary), 'o' (octal with 0 prefix), 'O' (octal with 0o prefix),
// 'd' (decimal), 'x' (lowercase hexadecimal), and
// 'X' (uppercase hexadecimal).
// Also supported are the full suite of package fmt's format
// flags for integral types, including '+' and ' ' for sign
// control, '#' for leading zero in octal and for hexadecimal,
// a leading "0x" or "0X" for "%#x" and "%#X" respectively,
// specification of minimum digits precision, output field
// width, space or zero padding, and '-' for left or right
// justification.
func (x *Int) Format(s fmt.State, ch rune) {
	// determine base
	var base int
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		// unknown format
		fmt.Fprintf(s, "%%!%c(exint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	// determine sign character
	sign := ""
	switch {
	case x.Sign() < 0:
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	// determine prefix characters for indicating output base
	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b': // binary
			prefix = "0b"
		case 'o': // octal
			prefix = "0"
		case 'x': // hexadecimal
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	var a Int
	digits := a.Abs(x).v.itoa(base)
	if ch == 'X' {
		// faster than bytes.ToUpper
		for i, d := range digits {
			if 'a' <= d && d <= 'z' {
				digits[i] = 'A' + (d - 'a')
			}
		}
	}

	// number of characters for the three classes of number padding
	var left int  // space characters to left of digits for right justification ("%8d")
	var zeros int // zero characters (actually cs[0]) as left-most digits ("%.8d")
	var right int // space characters to right of digits for left justification ("%-8d")

	// determine number padding from precision: the least number of digits to output
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeros = precision - len(digits) // count of zero padding
		case len(digits) == 1 && digits[0] == '0' && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	// determine field pad from width: the least number of characters to output
	length := len(sign) + len(prefix) + zeros + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width { // pad as specified
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0') && !precisionSet:
			// pad with zeros unless precision also specified
			zeros = d
		default:
			// pad on the left with spaces
			left = d
		}
	}

	// print number as [left pad][sign][prefix][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeros)
	s.Write(digits)
	writeMultiple(s, " ", right)
}

// scan sets z to the integer value corresponding to the longest possible
// prefix read from r representing a signed integer number in the given
// conversion base. It returns z and an error, if any. The number must be of
// the form:
//
//	number = [ "-" ] digits .
//	digits = digit { digit } .
//	digit  = "0" ... "9" | "a" ... "z" | "A" ... "Z" .
//
// A base argument of 0 is the same as 10. The character following the digits
// is not consumed; if it is a letter or digit that is not valid in base, the
// number is malformed and ErrSyntax is returned. z is only modified if the
// scan succeeds.
func (z *Int) scan(r io.ByteScanner, base int) (*Int, error) {
	if base == 0 {
		base = 10
	}
	if base < 2 || base > MaxBase {
		panic(fmt.Sprintf("invalid number base %d", base))
	}
	neg, err := scanSign(r)
	if err != nil {
		return nil, err
	}
	m, err := nat(nil).scan(r, base)
	if err != nil {
		return nil, err
	}
	z.v = z.v.setMagnitude(m, neg)
	return z, nil
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		if err == io.EOF {
			err = ErrNoDigits
		}
		return false, err
	}
	if ch == '-' {
		return true, nil
	}
	_ = r.UnreadByte()
	return false, nil
}

// scan reads the digits of an unsigned number in the given base.
//
// Algorithm: Collect digits in groups of at most n digits in di and then use
// mulAddWW for every such group to add them to the result. This is the same
// as accumulating z = z*base + digit for every digit.
func (z nat) scan(r io.ByteScanner, base int) (res nat, err error) {
	b1 := Word(base)
	bn, n := maxPow(b1) // at most n digits in base b1 fit into Word
	di := Word(0)       // 0 <= di < b1**i < bn
	i := 0              // 0 <= i < n
	count := 0
	malformed := false

	z = z[:0]
	for {
		var ch byte
		if ch, err = r.ReadByte(); err != nil {
			break
		}
		// convert rune into digit value d1
		var d1 Word
		switch {
		case '0' <= ch && ch <= '9':
			d1 = Word(ch - '0')
		case 'a' <= ch && ch <= 'z':
			d1 = Word(ch - 'a' + 10)
		case 'A' <= ch && ch <= 'Z':
			d1 = Word(ch - 'A' + 10)
		default:
			d1 = MaxBase + 1
		}
		if d1 >= b1 {
			_ = r.UnreadByte() // ch does not belong to number anymore
			malformed = d1 < MaxBase+1
			break
		}
		count++

		// collect d1 in di
		di = di*b1 + d1
		i++

		// if di is "full", add it to the result
		if i == n {
			z = z.mulAddWW(z, bn, di)
			di = 0
			i = 0
		}
	}

	if err == io.EOF {
		err = nil
	}
	switch {
	case err != nil:
		return nil, err
	case count == 0:
		return nil, ErrNoDigits
	case malformed:
		return nil, ErrSyntax
	}

	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow(b1, i), di)
	}
	return z.norm(), nil
}

// Parse sets z to the value of s, interpreted in the given base, and returns
// z. The entire string (not just a prefix) must be valid. Base must be 0 (same
// as 10) or between 2 and MaxBase. If the operation fails, z is unchanged and
// the returned error wraps ErrNoDigits or ErrSyntax.
func (z *Int) Parse(s string, base int) (*Int, error) {
	r := strings.NewReader(s)
	var t Int
	if _, err := t.scan(r, base); err != nil {
		return nil, errors.Wrapf(err, "parsing %q at offset %d", s, int(r.Size())-r.Len())
	}
	// entire string must have been consumed
	if ch, err := r.ReadByte(); err != io.EOF {
		return nil, errors.Wrapf(ErrSyntax, "parsing %q: unexpected %q at offset %d", s, ch, int(r.Size())-r.Len()-1)
	}
	z.v = z.v.set(t.v)
	return z, nil
}

// SetString sets z to the value of s, interpreted in the given base, and
// returns z and a boolean indicating success. The entire string (not just a
// prefix) must be valid for success. If SetString fails, the value of z is
// unchanged and the returned value is nil.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	if _, err := z.Parse(s, base); err != nil {
		return nil, false
	}
	return z, true
}

var _ fmt.Scanner = intOne // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts the formats 'b' (binary), 'o' (octal),
// 'd' (decimal), 'x' (lowercase hexadecimal), and 'X' (uppercase
// hexadecimal). On failure z is unchanged and the offending character is
// left unread.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace() // skip leading space characters
	base := 0
	switch ch {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		return errors.Newf("Int.Scan: invalid verb %q", ch)
	}
	_, err := z.scan(byteReader{s}, base)
	return err
}
