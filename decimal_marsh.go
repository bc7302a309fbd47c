// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of BigReals.

package decimal

import "fmt"

// MarshalText implements the encoding.TextMarshaler interface. x is
// marshaled in full precision, radix 10.
func (x *BigReal) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Text(10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface,
// parsing text as a radix-10 literal.
func (z *BigReal) UnmarshalText(text []byte) error {
	v, ok := ParseBigReal(text, 10)
	if !ok {
		return fmt.Errorf("decimal: cannot unmarshal %q into a *decimal.BigReal", text)
	}
	z.Set(v)
	return nil
}
