// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "math/big"

// digitValue returns the value of a dc numeral glyph (always hex
// glyphs 0-9A-F regardless of the current radix) or -1 if c is not a
// numeral glyph.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// IsDigit reports whether c is a numeral glyph valid in a dc literal,
// independent of the current input radix.
func IsDigit(c byte) bool {
	return digitValue(c) >= 0
}

// ParseBigReal parses buf, a number literal matching the grammar
// `_?[0-9A-F]*(\.[0-9A-F]*)?` with at least one digit glyph,
// interpreted in the given input radix, and reports whether it
// succeeded. A literal with no digit glyph ("", "_", ".", "_.") is
// rejected.
//
// Digit glyphs with a face value >= radix are accepted: each glyph
// simply contributes digit×radix**position. The fractional-digit count
// of the result is defined as the number of glyphs after the decimal
// point; when radix != 10 this generally requires truncating the exact
// radix-R fraction to that many decimal digits (see DESIGN.md for the
// reasoning — GNU dc's documented behavior for a non-decimal ibase
// isn't settled by any input available here, so this is the chosen
// convention).
func ParseBigReal(buf []byte, radix uint32) (*BigReal, bool) {
	i := 0
	neg := false
	if i < len(buf) && buf[i] == '_' {
		neg = true
		i++
	}
	start := i
	for i < len(buf) && IsDigit(buf[i]) {
		i++
	}
	intDigits := buf[start:i]
	var fracDigits []byte
	if i < len(buf) && buf[i] == '.' {
		i++
		fs := i
		for i < len(buf) && IsDigit(buf[i]) {
			i++
		}
		fracDigits = buf[fs:i]
	}
	if i != len(buf) || (len(intDigits) == 0 && len(fracDigits) == 0) {
		return nil, false
	}

	R := big.NewInt(int64(radix))
	num := new(big.Int)
	for _, c := range intDigits {
		num.Mul(num, R)
		num.Add(num, big.NewInt(int64(digitValue(c))))
	}
	for _, c := range fracDigits {
		num.Mul(num, R)
		num.Add(num, big.NewInt(int64(digitValue(c))))
	}

	f := uint32(len(fracDigits))
	mant := new(big.Int).Mul(num, pow10(f))
	den := new(big.Int).Exp(R, big.NewInt(int64(f)), nil)
	mant.Quo(mant, den) // truncate toward zero, matching this package's general truncation policy

	return new(BigReal).SetMant(neg, mant, f), true
}
