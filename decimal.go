// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"
)

// A BigReal represents a signed arbitrary-precision decimal number
//
//	sign × mant × 10**(-scale)
//
// with mant >= 0 and scale >= 0. The pair (mant, scale) is not required
// to be minimal: trailing fractional zero digits may be present, and
// are preserved by stack-neutral operations such as Copy. Zero always
// has a non-negative sign.
//
// The zero value for a BigReal is ready to use and represents 0 with
// scale 0.
//
// Operations always take pointer arguments (*BigReal) rather than
// BigReal values, and each unique BigReal value requires its own
// unique *BigReal pointer; to "copy" a value use Copy or Set.
type BigReal struct {
	neg   bool
	mant  *big.Int
	scale uint32
}

// NewInt returns a new BigReal set to x with scale 0.
func NewInt(x int64) *BigReal {
	return new(BigReal).SetInt64(x)
}

// mantissa returns x's magnitude, never nil.
func (x *BigReal) mantissa() *big.Int {
	if x.mant == nil {
		return new(big.Int)
	}
	return x.mant
}

// Scale returns the number of fractional decimal digits of x.
func (x *BigReal) Scale() uint32 {
	return x.scale
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *BigReal) Sign() int {
	if x.mant == nil || x.mant.Sign() == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative.
func (x *BigReal) Signbit() bool {
	return x.neg && x.Sign() != 0
}

// IsZero reports whether x is 0.
func (x *BigReal) IsZero() bool {
	return x.Sign() == 0
}

// IsInt reports whether x is an integer, i.e. whether its fractional
// digits (if any) are all zero.
func (x *BigReal) IsInt() bool {
	if x.scale == 0 {
		return true
	}
	m := x.mantissa()
	t := new(big.Int).Set(m)
	for i := uint32(0); i < x.scale; i++ {
		q, r := new(big.Int).QuoRem(t, bigTen, new(big.Int))
		if r.Sign() != 0 {
			return false
		}
		t = q
	}
	return true
}

// Set sets z to x and returns z. x is not modified even if z and x
// are the same.
func (z *BigReal) Set(x *BigReal) *BigReal {
	if z != x {
		z.neg = x.neg
		z.mant = new(big.Int).Set(x.mantissa())
		z.scale = x.scale
	}
	return z
}

// Copy is an alias for Set, for callers that want to make clear they
// are duplicating a value rather than reassigning an existing one.
func (z *BigReal) Copy(x *BigReal) *BigReal {
	return z.Set(x)
}

// SetInt64 sets z to x with scale 0 and returns z.
func (z *BigReal) SetInt64(x int64) *BigReal {
	z.neg = x < 0
	u := x
	if z.neg {
		u = -u
	}
	z.mant = big.NewInt(u)
	z.scale = 0
	return z
}

// SetMant sets z to sign × mant × 10**(-scale) and returns z. mant must
// be non-negative; ownership of mant passes to z.
func (z *BigReal) SetMant(neg bool, mant *big.Int, scale uint32) *BigReal {
	z.neg = neg
	z.mant = mant
	z.scale = scale
	z.normalizeZeroSign()
	return z
}

// normalizeZeroSign enforces the invariant that zero has a
// non-negative sign.
func (z *BigReal) normalizeZeroSign() {
	if z.mant != nil && z.mant.Sign() == 0 {
		z.neg = false
	}
}

// Mant returns x's unsigned magnitude and scale, sharing storage with x.
// Callers must not mutate the returned *big.Int.
func (x *BigReal) Mant() (*big.Int, uint32) {
	return x.mantissa(), x.scale
}

// Neg sets z to -x and returns z.
func (z *BigReal) Neg(x *BigReal) *BigReal {
	z.Set(x)
	if !z.IsZero() {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *BigReal) Abs(x *BigReal) *BigReal {
	z.Set(x)
	z.neg = false
	return z
}

// align returns the mantissas of x and y scaled to a common scale
// (the larger of the two), along with that scale.
func align(x, y *BigReal) (xm, ym *big.Int, scale uint32) {
	scale = x.scale
	if y.scale > scale {
		scale = y.scale
	}
	xm = scaleUp(x.mantissa(), scale-x.scale)
	ym = scaleUp(y.mantissa(), scale-y.scale)
	return
}

var bigTen = big.NewInt(10)

// pow10 returns 10**n as a new *big.Int.
func pow10(n uint32) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// scaleUp returns m × 10**n as a new *big.Int.
func scaleUp(m *big.Int, n uint32) *big.Int {
	if n == 0 {
		return new(big.Int).Set(m)
	}
	return new(big.Int).Mul(m, pow10(n))
}

// signedMant returns x's mantissa with x's sign applied, as a new *big.Int.
func signedMant(x *BigReal) *big.Int {
	m := new(big.Int).Set(x.mantissa())
	if x.neg {
		m.Neg(m)
	}
	return m
}

// Add sets z to the exact sum x+y and returns z.
// Result scale is max(x.Scale(), y.Scale()).
func (z *BigReal) Add(x, y *BigReal) *BigReal {
	xm, ym, scale := align(x, y)
	if x.neg {
		xm.Neg(xm)
	}
	if y.neg {
		ym.Neg(ym)
	}
	sum := xm.Add(xm, ym)
	neg := sum.Sign() < 0
	sum.Abs(sum)
	return z.SetMant(neg, sum, scale)
}

// Sub sets z to the exact difference x-y and returns z.
// Result scale is max(x.Scale(), y.Scale()).
func (z *BigReal) Sub(x, y *BigReal) *BigReal {
	ny := new(BigReal).Neg(y)
	return z.Add(x, ny)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (ignoring scale)
//	+1 if x >  y
func (x *BigReal) Cmp(y *BigReal) int {
	xm, ym, _ := align(x, y)
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	}
	if sx == 0 {
		return 0
	}
	c := xm.Cmp(ym)
	if x.neg {
		c = -c
	}
	return c
}

// IntPart returns the signed integer part of x (x truncated toward
// zero to scale 0), as a new *big.Int sharing no storage with x.
func (x *BigReal) IntPart() *big.Int {
	m, _ := truncateTo(x.mantissa(), x.scale, 0)
	m = new(big.Int).Set(m)
	if x.neg {
		m.Neg(m)
	}
	return m
}

// NumDigits returns the number of significant base-10 digits in x:
// the integer-part digit count plus its scale.
func (x *BigReal) NumDigits() int64 {
	ip := new(big.Int).Abs(x.IntPart())
	return int64(len(ip.String())) + int64(x.scale)
}

// Equal reports whether x and y denote the same numeric value.
func (x *BigReal) Equal(y *BigReal) bool {
	return x.Cmp(y) == 0
}
