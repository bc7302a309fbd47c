// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "math/big"

const maxLineLen = 69 // GNU dc wraps output lines at this width

// hexGlyphs is the digit alphabet for radixes <= 16: a contiguous
// string using 0-9A-F, matching GNU dc.
const hexGlyphs = "0123456789ABCDEF"

// Text returns x formatted in the given radix: canonical decimal for
// radix 10; a contiguous 0-9A-F string for 2 <= radix <= 16;
// space-separated decimal digit groups for radix > 16. Lines longer
// than 69 characters are broken with a trailing "\" before the
// newline, matching GNU dc.
func (x *BigReal) Text(radix uint32) []byte {
	neg := x.Signbit()
	mant := x.mantissa()
	f := x.scale

	var intPart, fracRem *big.Int
	if f == 0 {
		intPart = new(big.Int).Set(mant)
		fracRem = new(big.Int)
	} else {
		denom := pow10(f)
		intPart, fracRem = new(big.Int).QuoRem(mant, denom, new(big.Int))
	}

	var body []byte
	if radix == 10 {
		// GNU dc omits the leading "0" when the integer part is zero
		// and there are fractional digits to show (e.g. ".75", not
		// "0.75"); a bare integer still prints its "0".
		if intPart.Sign() != 0 || f == 0 {
			body = []byte(intPart.String())
		}
		if f > 0 {
			fs := fracRem.String()
			for uint32(len(fs)) < f {
				fs = "0" + fs
			}
			body = append(body, '.')
			body = append(body, fs...)
		}
	} else {
		intDigits := toRadixDigits(intPart, radix)
		var fracDigits []int
		if f > 0 {
			fracDigits = fracRadixDigits(fracRem, pow10(f), radix, f)
		}
		body = appendDigits(nil, intDigits, radix)
		if len(fracDigits) > 0 {
			body = append(body, '.')
			body = appendDigits(body, fracDigits, radix)
		}
	}

	out := body
	if neg && !x.IsZero() {
		out = append([]byte{'-'}, body...)
	}
	return wrapLong(out)
}

// String implements fmt.Stringer, formatting x in radix 10.
func (x *BigReal) String() string {
	return string(x.Text(10))
}

// toRadixDigits returns the base-radix digits of n (most significant
// first); a zero n yields a single 0 digit.
func toRadixDigits(n *big.Int, radix uint32) []int {
	if n.Sign() == 0 {
		return []int{0}
	}
	R := big.NewInt(int64(radix))
	t := new(big.Int).Set(n)
	var digits []int
	for t.Sign() > 0 {
		q, r := new(big.Int).QuoRem(t, R, new(big.Int))
		digits = append(digits, int(r.Int64()))
		t = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// fracRadixDigits produces count base-radix fractional digits of the
// value fracRem/denom (0 <= fracRem < denom), most significant first,
// by repeated multiply-and-extract.
func fracRadixDigits(fracRem, denom *big.Int, radix, count uint32) []int {
	R := big.NewInt(int64(radix))
	t := new(big.Int).Set(fracRem)
	digits := make([]int, 0, count)
	for i := uint32(0); i < count; i++ {
		t.Mul(t, R)
		q, r := new(big.Int).QuoRem(t, denom, new(big.Int))
		digits = append(digits, int(q.Int64()))
		t = r
	}
	return digits
}

// appendDigits appends digits (each < radix) to dst in the glyph form
// for the given radix: hex glyphs at or below radix 16, space-separated
// decimal groups above it.
func appendDigits(dst []byte, digits []int, radix uint32) []byte {
	if radix > 16 {
		for i, d := range digits {
			if i > 0 {
				dst = append(dst, ' ')
			}
			dst = appendDecimal(dst, d)
		}
		return dst
	}
	for _, d := range digits {
		dst = append(dst, hexGlyphs[d])
	}
	return dst
}

func appendDecimal(dst []byte, n int) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// wrapLong inserts a trailing backslash before a newline every
// maxLineLen characters, matching GNU dc's long-number line wrapping.
func wrapLong(b []byte) []byte {
	if len(b) <= maxLineLen {
		return b
	}
	out := make([]byte, 0, len(b)+len(b)/maxLineLen*2)
	for len(b) > maxLineLen {
		out = append(out, b[:maxLineLen]...)
		out = append(out, '\\', '\n')
		b = b[maxLineLen:]
	}
	out = append(out, b...)
	return out
}
