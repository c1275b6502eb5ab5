// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package exint

import (
	"github.com/cockroachdb/errors"
)

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.v.itoa(10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// On failure, z is left unchanged.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text), 0); err != nil {
		return errors.Wrapf(err, "exint: cannot unmarshal %q into a *exint.Int", text)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Ints are encoded as
// JSON numbers.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.v.itoa(10), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (z *Int) UnmarshalJSON(text []byte) error {
	// Ignore null, like in the main JSON package.
	if string(text) == "null" {
		return nil
	}
	return z.UnmarshalText(text)
}
