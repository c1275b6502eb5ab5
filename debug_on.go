// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build exint_debug

package exint

// debugExint enables internal consistency checks. Operations panic with an
// assertion failure when an internal invariant is broken.
const debugExint = true
