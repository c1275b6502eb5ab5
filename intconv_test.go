// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntText(t *testing.T) {
	td := []struct {
		x    string
		base int
		s    string
	}{
		{"0", 2, "0"},
		{"0", 36, "0"},
		{"-1", 2, "-1"},
		{"255", 2, "11111111"},
		{"-255", 16, "-ff"},
		{"1295", 36, "zz"},
		{"-9223372036854775808", 16, "-8000000000000000"},
		{"18446744073709551616", 16, "10000000000000000"},
		{"-340282366920938463463374607431768211456", 8, "-4000000000000000000000000000000000000000000"},
	}
	for _, d := range td {
		x := mustParse(t, d.x)
		assert.Equal(t, d.s, x.Text(d.base), "%s in base %d", d.x, d.base)
		assert.Equal(t, "x="+d.s, string(x.Append([]byte("x="), d.base)))
	}
	var x *Int
	assert.Equal(t, "<nil>", x.Text(10))
	assert.Equal(t, "<nil>", x.String())
}

// Converting to and from every base agrees with math/big.
func TestIntTextBases(t *testing.T) {
	for i := 0; i < 50; i++ {
		b := natToBig(rndNat(1 + i%7))
		if i&1 != 0 {
			b.Neg(b)
		}
		x, err := new(Int).Parse(b.Text(10), 10)
		require.NoError(t, err)
		for base := 2; base <= MaxBase; base++ {
			s := x.Text(base)
			require.Equal(t, b.Text(base), s, "base %d", base)
			y, err := new(Int).Parse(strings.ToUpper(s), base)
			require.NoError(t, err)
			require.True(t, x.Equal(y))
		}
	}
}

func TestIntTextBadBase(t *testing.T) {
	assert.Panics(t, func() { NewInt(1).Text(1) })
	assert.Panics(t, func() { NewInt(1).Text(MaxBase + 1) })
	assert.Panics(t, func() { new(Int).Parse("1", 37) })
}

func TestIntParse(t *testing.T) {
	td := []struct {
		s    string
		base int
		want string
		err  error
	}{
		{"0", 0, "0", nil},
		{"-0", 10, "0", nil},
		{"000123", 10, "123", nil},
		{"-18446744073709551616", 0, "-18446744073709551616", nil},
		{"ff", 16, "255", nil},
		{"FF", 16, "255", nil},
		{"-zZ", 36, "-1295", nil},
		{"1010", 2, "10", nil},
		{"", 10, "", ErrNoDigits},
		{"-", 10, "", ErrNoDigits},
		{"+1", 10, "", ErrNoDigits},
		{" 1", 10, "", ErrNoDigits},
		{"12a3", 10, "", ErrSyntax},
		{"fg", 16, "", ErrSyntax},
		{"12", 2, "", ErrSyntax},
		{"0x10", 0, "", ErrSyntax},
		{"12 ", 10, "", ErrSyntax},
		{"1_000", 10, "", ErrSyntax},
		{"--1", 10, "", ErrNoDigits},
	}
	for _, d := range td {
		z := NewInt(-77)
		r, err := z.Parse(d.s, d.base)
		if d.err != nil {
			assert.True(t, errors.Is(err, d.err), "Parse(%q): got error %v, want %v", d.s, err, d.err)
			assert.Nil(t, r)
			assert.Equal(t, "-77", z.String(), "Parse(%q) modified its receiver", d.s)
			_, ok := new(Int).SetString(d.s, d.base)
			assert.False(t, ok)
			continue
		}
		require.NoError(t, err, "Parse(%q)", d.s)
		assert.Same(t, z, r)
		assert.Equal(t, d.want, z.String())
		y, ok := new(Int).SetString(d.s, d.base)
		assert.True(t, ok)
		assert.True(t, y.Equal(z))
	}
}

// A malformed digit stops the scan and is left in the input.
func TestIntScanUnread(t *testing.T) {
	r := strings.NewReader("12a3")
	z := NewInt(5)
	_, err := z.scan(r, 10)
	require.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, "5", z.String())
	rest, _ := io.ReadAll(r)
	assert.Equal(t, "a3", string(rest))

	// a non-digit terminates the number
	r = strings.NewReader("-12+3")
	_, err = z.scan(r, 10)
	require.NoError(t, err)
	assert.Equal(t, "-12", z.String())
	rest, _ = io.ReadAll(r)
	assert.Equal(t, "+3", string(rest))
}

func TestIntFormat(t *testing.T) {
	td := []struct {
		format string
		x      string
		want   string
	}{
		{"%d", "0", "0"},
		{"%v", "12", "12"},
		{"%s", "-12", "-12"},
		{"%b", "5", "101"},
		{"%#b", "5", "0b101"},
		{"%o", "8", "10"},
		{"%#o", "8", "010"},
		{"%O", "8", "0o10"},
		{"%x", "-255", "-ff"},
		{"%X", "-255", "-FF"},
		{"%#x", "255", "0xff"},
		{"%#X", "255", "0XFF"},
		{"%+d", "5", "+5"},
		{"% d", "5", " 5"},
		{"%+d", "-5", "-5"},
		{"%8d", "-5", "      -5"},
		{"%-8d|", "5", "5       |"},
		{"%08d", "-5", "-0000005"},
		{"%.5d", "42", "00042"},
		{"%.0d", "0", ""},
		{"%8.3d", "5", "     005"},
		{"%-#8x|", "255", "0xff    |"},
		{"%x", "340282366920938463463374607431768211455", "ffffffffffffffffffffffffffffffff"},
		{"%q", "12", "%!q(exint.Int=12)"},
	}
	for _, d := range td {
		assert.Equal(t, d.want, fmt.Sprintf(d.format, mustParse(t, d.x)), "format %q", d.format)
	}
	var x *Int
	assert.Equal(t, "<nil>", fmt.Sprintf("%d", x))
}

func TestIntScan(t *testing.T) {
	td := []struct {
		in     string
		format string
		want   string
	}{
		{"  -123 ", "%d", "-123"},
		{"ff", "%x", "255"},
		{"FF", "%X", "255"},
		{"101", "%b", "5"},
		{"17", "%o", "15"},
		{"99999999999999999999999", "%v", "99999999999999999999999"},
	}
	for _, d := range td {
		x := new(Int)
		_, err := fmt.Sscanf(d.in, d.format, x)
		require.NoError(t, err, "Sscanf(%q, %q)", d.in, d.format)
		assert.Equal(t, d.want, x.String())
	}

	x := NewInt(1)
	_, err := fmt.Sscan("12a3", x)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Equal(t, "1", x.String())

	// a non-ASCII character ends the number and stays unread
	var rest string
	n, err := fmt.Sscanf("12é", "%d%s", x, &rest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "12", x.String())
	assert.Equal(t, "é", rest)

	var a, b Int
	n, err = fmt.Sscan("123 -456", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "-333", new(Int).Add(&a, &b).String())
}

func TestIntMarshalText(t *testing.T) {
	for _, s := range []string{"0", "-1", "123456789012345678901234567890", "-9223372036854775809"} {
		x := mustParse(t, s)
		text, err := x.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(text))
		var y Int
		require.NoError(t, y.UnmarshalText(text))
		assert.True(t, x.Equal(&y))
	}
	var x *Int
	text, err := x.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "<nil>", string(text))

	y := NewInt(3)
	err = y.UnmarshalText([]byte("1e3"))
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Contains(t, err.Error(), "cannot unmarshal")
	assert.Equal(t, "3", y.String())
}

func TestIntMarshalJSON(t *testing.T) {
	type payload struct {
		A *Int `json:"a"`
		B *Int `json:"b"`
	}
	in := payload{A: mustParse(t, "-123456789012345678901234567890")}
	buf, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"a":-123456789012345678901234567890,"b":null}`, string(buf))

	var out payload
	require.NoError(t, json.Unmarshal(buf, &out))
	assert.True(t, in.A.Equal(out.A))
	assert.Nil(t, out.B)

	// null leaves the value alone
	x := NewInt(9)
	require.NoError(t, x.UnmarshalJSON([]byte("null")))
	assert.Equal(t, "9", x.String())

	err = json.Unmarshal([]byte(`{"a":1.5}`), &out)
	assert.Error(t, err)
	err = json.Unmarshal([]byte(`{"a":"12"}`), &out)
	assert.Error(t, err)
}
