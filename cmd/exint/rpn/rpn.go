// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpn implements a reverse Polish notation calculator on exint.Ints.
//
// An expression is a whitespace separated list of tokens. A token is either a
// decimal integer with an optional leading '-', which is pushed on the stack,
// or one of the following operators:
//
//	+ - * / % & | ^     binary arithmetic and bitwise operators
//	<< >>               shift the second item by the top item
//	pow gcd             x**n and greatest common divisor
//	divmod              push the quotient then the remainder
//	~ neg abs sqrt fact unary operators
//	binom               binomial coefficient of the second item and the top item
//	pi                  ⌊π·10ⁿ⌋ where n is the top item
//	dup swap drop       stack manipulation
//
// Division truncates toward zero.
package rpn

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/db47h/exint"
	"github.com/db47h/exint/calc"
	"github.com/db47h/exint/math"
)

// Errors returned by Eval.
var (
	ErrUnderflow = errors.New("stack underflow")
	ErrToken     = errors.New("unknown token")
	ErrCount     = errors.New("count out of range")
)

// Bounds for shift counts and exponents, and for factorial arguments.
const (
	maxCount = 1 << 24
	maxFact  = 1 << 14
	maxPi    = 1 << 12
)

// A Machine holds the evaluation stack. Its zero value is an empty stack ready
// to use.
type Machine struct {
	stack []*exint.Int
	c     calc.Calc
}

// Stack returns the contents of the stack, bottom first. The result shares the
// Machine's storage.
func (m *Machine) Stack() []*exint.Int {
	return m.stack
}

// Reset empties the stack.
func (m *Machine) Reset() {
	m.stack = m.stack[:0]
	_ = m.c.Err()
}

// Eval evaluates line on a new Machine and returns the resulting stack.
func Eval(line string) ([]*exint.Int, error) {
	var m Machine
	if err := m.Eval(line); err != nil {
		return nil, err
	}
	return m.Stack(), nil
}

// Eval evaluates the tokens of line. On error, the stack is left as it was
// right before the failing token.
func (m *Machine) Eval(line string) error {
	for _, tok := range strings.Fields(line) {
		if err := m.exec(tok); err != nil {
			return errors.Wrapf(err, "%q", tok)
		}
	}
	return nil
}

type (
	binaryOp func(c *calc.Calc, z, x, y *exint.Int) *exint.Int
	unaryOp  func(c *calc.Calc, z, x *exint.Int) *exint.Int
)

var binaryOps = map[string]binaryOp{
	"+":   (*calc.Calc).Add,
	"-":   (*calc.Calc).Sub,
	"*":   (*calc.Calc).Mul,
	"/":   (*calc.Calc).Quo,
	"%":   (*calc.Calc).Rem,
	"&":   (*calc.Calc).And,
	"|":   (*calc.Calc).Or,
	"^":   (*calc.Calc).Xor,
	"gcd": (*calc.Calc).GCD,
}

var unaryOps = map[string]unaryOp{
	"~":    (*calc.Calc).Not,
	"neg":  (*calc.Calc).Neg,
	"abs":  (*calc.Calc).Abs,
	"sqrt": (*calc.Calc).Sqrt,
}

func (m *Machine) exec(tok string) error {
	if op, ok := binaryOps[tok]; ok {
		return m.binary(op)
	}
	if op, ok := unaryOps[tok]; ok {
		x, err := m.peek(0)
		if err != nil {
			return err
		}
		z := op(&m.c, new(exint.Int), x)
		if err := m.c.Err(); err != nil {
			return err
		}
		m.stack[len(m.stack)-1] = z
		return nil
	}

	switch tok {
	case "<<", ">>", "pow":
		x, err := m.peek(1)
		if err != nil {
			return err
		}
		n, err := m.count(0, maxCount)
		if err != nil {
			return err
		}
		z := new(exint.Int)
		switch tok {
		case "<<":
			m.c.Lsh(z, x, n)
		case ">>":
			m.c.Rsh(z, x, n)
		default:
			m.c.Pow(z, x, n)
		}
		m.replace(2, z)
	case "fact":
		n, err := m.count(0, maxFact)
		if err != nil {
			return err
		}
		m.stack[len(m.stack)-1] = math.Factorial(new(exint.Int), uint64(n))
	case "binom":
		n, err := m.count(1, maxFact)
		if err != nil {
			return err
		}
		k, err := m.count(0, maxFact)
		if err != nil {
			return err
		}
		m.replace(2, math.Binomial(new(exint.Int), uint64(n), uint64(k)))
	case "pi":
		n, err := m.count(0, maxPi)
		if err != nil {
			return err
		}
		m.stack[len(m.stack)-1] = math.Pi(new(exint.Int), n)
	case "divmod":
		y, err := m.peek(0)
		if err != nil {
			return err
		}
		x, err := m.peek(1)
		if err != nil {
			return err
		}
		q, r := m.c.QuoRem(new(exint.Int), new(exint.Int), x, y)
		if err := m.c.Err(); err != nil {
			return err
		}
		m.replace(2, q, r)
	case "dup":
		x, err := m.peek(0)
		if err != nil {
			return err
		}
		m.stack = append(m.stack, new(exint.Int).Set(x))
	case "swap":
		if len(m.stack) < 2 {
			return ErrUnderflow
		}
		n := len(m.stack)
		m.stack[n-1], m.stack[n-2] = m.stack[n-2], m.stack[n-1]
	case "drop":
		if len(m.stack) < 1 {
			return ErrUnderflow
		}
		m.stack = m.stack[:len(m.stack)-1]
	default:
		x, err := new(exint.Int).Parse(tok, 10)
		if err != nil {
			return errors.Mark(err, ErrToken)
		}
		m.stack = append(m.stack, x)
	}
	return nil
}

// binary applies op to the top two items of the stack and replaces them with
// the result.
func (m *Machine) binary(op binaryOp) error {
	y, err := m.peek(0)
	if err != nil {
		return err
	}
	x, err := m.peek(1)
	if err != nil {
		return err
	}
	z := op(&m.c, new(exint.Int), x, y)
	if err := m.c.Err(); err != nil {
		return err
	}
	m.replace(2, z)
	return nil
}

// count returns the i-th item from the top of the stack as a count in
// [0, limit]. The item is not popped.
func (m *Machine) count(i int, limit int64) (uint, error) {
	x, err := m.peek(i)
	if err != nil {
		return 0, err
	}
	n, ok := exint.Native[int64](x)
	if !ok || n < 0 || n > limit {
		return 0, errors.Wrapf(ErrCount, "%s", x)
	}
	return uint(n), nil
}

// peek returns the i-th item from the top of the stack.
func (m *Machine) peek(i int) (*exint.Int, error) {
	if i >= len(m.stack) {
		return nil, ErrUnderflow
	}
	return m.stack[len(m.stack)-1-i], nil
}

// replace pops n items and pushes xs.
func (m *Machine) replace(n int, xs ...*exint.Int) {
	m.stack = append(m.stack[:len(m.stack)-n], xs...)
}
