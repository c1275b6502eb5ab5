// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors helpers and error types from math/big.

package exint

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 10 + ('z' - 'a' + 1)

// Errors reported by conversions.
var (
	// ErrNoDigits is returned when a number has no digits.
	ErrNoDigits = errors.New("number has no digits")
	// ErrSyntax is returned when a digit run is terminated by a letter or
	// digit that is not valid in the conversion base.
	ErrSyntax = errors.New("invalid digit")
	// ErrNotFinite is returned when converting NaN or ±Inf.
	ErrNotFinite = errors.New("value is not finite")
)

// Precondition violations. They are raised as ErrDomain panics.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNegativeSqrt   = errors.New("square root of negative operand")
	ErrOutOfDomain    = errors.New("argument out of domain")
)

// An ErrDomain panic is raised by an operation whose operands violate the
// operation's precondition. An ErrDomain implements the error interface and
// unwraps to one of ErrDivisionByZero, ErrNegativeSqrt or ErrOutOfDomain.
type ErrDomain struct {
	Op  string // operation name
	Err error  // precondition that failed
}

func (err ErrDomain) Error() string {
	return "exint: " + err.Op + ": " + err.Err.Error()
}

func (err ErrDomain) Unwrap() error {
	return err.Err
}

func assertf(format string, args ...interface{}) error {
	return errors.AssertionFailedf("exint: "+format, args...)
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		// a multi-byte rune is never a digit: end the input before it
		if err = r.UnreadRune(); err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// alias reports whether x and y share the same base array.
//
// Note: alias assumes that the capacity of underlying arrays
// is never changed for limb vectors; i.e. that there are
// no 3-operand slice expressions in this code.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// maxPow returns (b**n, n) such that b**n is the largest power b**n <= _M.
// In other words, at most n digits in base b fit into a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1 // assuming b <= _M
	for lim := _M / b; p <= lim; {
		// p == b**n && p <= lim
		p *= b
		n++
	}
	// p == b**n && p <= _M
	return
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}
