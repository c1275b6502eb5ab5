// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build exint_pure_go

package exint

func mulWW(x, y Word) (z1, z0 Word) {
	return mulWW_g(x, y)
}

func divWW(x1, x0, y Word) (q, r Word) {
	return divWW_g(x1, x0, y)
}

func addWW(x, y, c Word) (z0, c1 Word) {
	return addWW_g(x, y, c)
}

func subWW(x, y, c Word) (z0, c1 Word) {
	return subWW_g(x, y, c)
}
