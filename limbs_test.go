// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exint

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const top = 1 << (_W - 1) // sign bit of a Word

var limbsOpts = cmpopts.EquateEmpty()

func TestReduce(t *testing.T) {
	td := []struct {
		in, out limbs
	}{
		{nil, nil},
		{limbs{0}, nil},
		{limbs{0, 0, 0}, nil},
		{limbs{_M}, limbs{_M}},
		{limbs{_M, _M, _M}, limbs{_M}},
		{limbs{1, 0}, limbs{1}},
		{limbs{5, 0, 0}, limbs{5}},
		// top bit set: the zero word keeps the value positive
		{limbs{top, 0}, limbs{top, 0}},
		{limbs{top, 0, 0}, limbs{top, 0}},
		{limbs{_M, 0}, limbs{_M, 0}},
		// top bit clear: the all-ones word keeps the value negative
		{limbs{1, _M}, limbs{1, _M}},
		{limbs{top - 1, _M, _M}, limbs{top - 1, _M}},
		{limbs{top, _M}, limbs{top}},
		{limbs{0, top, _M, _M}, limbs{0, top}},
		{limbs{0, 1, 0}, limbs{0, 1}},
		{limbs{0, _M}, limbs{0, _M}},
	}
	for _, d := range td {
		in := append(limbs(nil), d.in...)
		out := in.reduce()
		if diff := cmp.Diff(d.out, out, limbsOpts); diff != "" {
			t.Errorf("reduce(%x) mismatch (-want +got):\n%s", d.in, diff)
		}
		if !out.reduced() {
			t.Errorf("reduce(%x) = %x is not reduced", d.in, out)
		}
	}
}

func TestLimbsCmp(t *testing.T) {
	td := []struct {
		x, y limbs
		r    int
	}{
		{nil, nil, 0},
		{nil, limbs{1}, -1},
		{nil, limbs{_M}, 1},
		{limbs{_M}, limbs{_M - 1}, 1},            // -1 > -2
		{limbs{top}, limbs{top - 1, _M}, 1},      // -2**(W-1) > -2**(W-1)-1
		{limbs{top, 0}, limbs{top - 1}, 1},       // 2**(W-1) > 2**(W-1)-1
		{limbs{1, 1}, limbs{_M, 0}, 1},           // B+1 > B-1
		{limbs{0, _M}, limbs{_M}, -1},            // -B < -1
		{limbs{_M, _M - 1}, limbs{0, _M}, -1},    // -B-1 < -B
		{limbs{3, top - 1}, limbs{3, top - 1}, 0},
	}
	for i, d := range td {
		if r := d.x.cmp(d.y); r != d.r {
			t.Errorf("#%d %x.cmp(%x) = %d; want %d", i, d.x, d.y, r, d.r)
		}
		if r := d.y.cmp(d.x); r != -d.r {
			t.Errorf("#%d %x.cmp(%x) = %d; want %d", i, d.y, d.x, r, -d.r)
		}
	}
}

func TestSetInt64(t *testing.T) {
	td := []int64{
		0, 1, -1, 2, -2,
		math.MaxInt32, math.MinInt32, math.MaxInt32 + 1, math.MinInt32 - 1,
		math.MaxUint32, -math.MaxUint32,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	}
	for _, x := range td {
		z := limbs(nil).setInt64(x)
		if !z.reduced() {
			t.Fatalf("setInt64(%d) = %x is not reduced", x, z)
		}
		if r := int64(z.low64()); r != x {
			t.Fatalf("setInt64(%d).low64() = %d", x, r)
		}
		if z.neg() != (x < 0) {
			t.Fatalf("setInt64(%d) = %x has the wrong sign", x, z)
		}
		if len(z) > 64/_W {
			t.Fatalf("setInt64(%d) = %x is too long", x, z)
		}
	}
}

func TestSetUint64(t *testing.T) {
	td := []struct {
		x   uint64
		len int
	}{
		{0, 0},
		{1, 1},
		{math.MaxInt64, 64 / _W},
		{math.MaxInt64 + 1, 64/_W + 1},
		{math.MaxUint64, 64/_W + 1},
	}
	for _, d := range td {
		z := limbs(nil).setUint64(d.x)
		if len(z) != d.len {
			t.Fatalf("setUint64(%d) = %x; want %d words", d.x, z, d.len)
		}
		if z.neg() {
			t.Fatalf("setUint64(%d) = %x is negative", d.x, z)
		}
		if r := z.low64(); r != d.x {
			t.Fatalf("setUint64(%d).low64() = %d", d.x, r)
		}
	}
}

func TestMagnitude(t *testing.T) {
	td := []struct {
		x   limbs
		m   nat
		neg bool
	}{
		{nil, nil, false},
		{limbs{5}, nat{5}, false},
		{limbs{top, 0}, nat{top}, false},
		{limbs{_M}, nat{1}, true},
		{limbs{top}, nat{top}, true},
		{limbs{0, _M}, nat{0, 1}, true},
		{limbs{1, top}, nat{_M, top - 1}, true},
	}
	for _, d := range td {
		m, neg := d.x.magnitude()
		if diff := cmp.Diff(d.m, m, limbsOpts); diff != "" || neg != d.neg {
			t.Errorf("%x.magnitude() = %x, %t; want %x, %t\n%s", d.x, m, neg, d.m, d.neg, diff)
		}
		z := limbs(nil).setMagnitude(m, neg)
		if diff := cmp.Diff(d.x, z, limbsOpts); diff != "" {
			t.Errorf("setMagnitude(%x, %t) mismatch (-want +got):\n%s", m, neg, diff)
		}
	}
}

func TestCombineCarry(t *testing.T) {
	td := []struct {
		x, y limbs
		op   string
		z    limbs
	}{
		// carry out of the top word grows the result
		{limbs{_M, top - 1}, limbs{1}, "add", limbs{0, top, 0}},
		// positive + negative may shrink it
		{limbs{0, 1}, limbs{0, _M}, "add", nil},
		{limbs{top - 1}, limbs{1}, "add", limbs{top, 0}},
		{limbs{top}, limbs{_M}, "add", limbs{top - 1, _M}},
		{limbs{top}, limbs{1}, "sub", limbs{top - 1, _M}},
		{nil, limbs{top}, "sub", limbs{top, 0}},
		{limbs{top, 0}, limbs{top, 0}, "sub", nil},
		{limbs{_M}, limbs{top, 0}, "and", limbs{top, 0}},
		{limbs{1}, limbs{_M - 1}, "or", limbs{_M}},
		{limbs{0, _M}, limbs{0, _M}, "xor", nil},
	}
	for _, d := range td {
		var z limbs
		switch d.op {
		case "add":
			z = z.add(d.x, d.y)
		case "sub":
			z = z.sub(d.x, d.y)
		case "and":
			z = z.and(d.x, d.y)
		case "or":
			z = z.or(d.x, d.y)
		case "xor":
			z = z.xor(d.x, d.y)
		}
		if diff := cmp.Diff(d.z, z, limbsOpts); diff != "" {
			t.Errorf("%x %s %x mismatch (-want +got):\n%s", d.x, d.op, d.y, diff)
		}
	}
}

func TestCombineAlias(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := limbs(rndV(rnd.Intn(5))).reduce()
		y := limbs(rndV(rnd.Intn(5))).reduce()
		want := limbs(nil).add(x, y)

		// z == x
		z := append(make(limbs, 0, 8), x...)
		z = z.add(z, y)
		if diff := cmp.Diff(want, z, limbsOpts); diff != "" {
			t.Fatalf("z = z + y mismatch (-want +got):\n%s", diff)
		}
		// z == y
		z = append(make(limbs, 0, 8), y...)
		z = z.add(x, z)
		if diff := cmp.Diff(want, z, limbsOpts); diff != "" {
			t.Fatalf("z = x + z mismatch (-want +got):\n%s", diff)
		}
		// z overlaps x at an offset
		buf := make(limbs, 10)
		copy(buf[1:], x)
		z = buf[:0].add(buf[1:1+len(x)], y)
		if diff := cmp.Diff(want, z, limbsOpts); diff != "" {
			t.Fatalf("partially aliased add mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestShifts(t *testing.T) {
	td := []struct {
		x    limbs
		s    uint
		l, r limbs
	}{
		{nil, 100, nil, nil},
		{limbs{1}, 0, limbs{1}, limbs{1}},
		{limbs{1}, 1, limbs{2}, nil},
		{limbs{_M}, 1, limbs{_M - 1}, limbs{_M}},
		{limbs{_M}, _W, limbs{0, _M}, limbs{_M}},
		{limbs{_M - 4}, 1, limbs{_M - 9}, limbs{_M - 2}}, // -5
		{limbs{1}, _W - 1, limbs{top, 0}, nil},
		{limbs{top, 0}, _W - 1, limbs{0, top >> 1}, limbs{1}},
		{limbs{0, 1}, _W, limbs{0, 0, 1}, limbs{1}},
		{limbs{0, _M}, _W + 3, limbs{0, 0, _M &^ 7}, limbs{_M}},
		{limbs{5, 7}, 3 * _W, limbs{0, 0, 0, 5, 7}, nil},
		{limbs{5, _M - 6}, 3 * _W, limbs{0, 0, 0, 5, _M - 6}, limbs{_M}},
	}
	for _, d := range td {
		if diff := cmp.Diff(d.l, limbs(nil).shl(d.x, d.s), limbsOpts); diff != "" {
			t.Errorf("%x << %d mismatch (-want +got):\n%s", d.x, d.s, diff)
		}
		if diff := cmp.Diff(d.r, limbs(nil).sar(d.x, d.s), limbsOpts); diff != "" {
			t.Errorf("%x >> %d mismatch (-want +got):\n%s", d.x, d.s, diff)
		}
		// in place
		z := append(make(limbs, 0, 10), d.x...)
		if diff := cmp.Diff(d.l, z.shl(z, d.s), limbsOpts); diff != "" {
			t.Errorf("in place %x << %d mismatch (-want +got):\n%s", d.x, d.s, diff)
		}
		z = append(z[:0], d.x...)
		if diff := cmp.Diff(d.r, z.sar(z, d.s), limbsOpts); diff != "" {
			t.Errorf("in place %x >> %d mismatch (-want +got):\n%s", d.x, d.s, diff)
		}
	}
}
