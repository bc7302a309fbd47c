// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"

	"github.com/go-dc/dc4/dcerr"
)

// umax32 returns the larger of x and y.
func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

// Mul sets z to the product x*y and returns z.
//
// Result scale is min(x.Scale()+y.Scale(), max(scale, x.Scale(), y.Scale()))
// for the caller-supplied target scale, truncating (never rounding) the
// exact product down to that scale.
func (z *BigReal) Mul(x, y *BigReal, scale uint32) *BigReal {
	m := new(big.Int).Mul(x.mantissa(), y.mantissa())
	neg := (x.neg != y.neg) && m.Sign() != 0
	rscale := minU32(x.scale+y.scale, umax32(scale, umax32(x.scale, y.scale)))
	m, _ = truncateTo(m, x.scale+y.scale, rscale)
	return z.SetMant(neg, m, rscale)
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// truncateTo truncates (never rounds) m, currently scaled by "from"
// fractional digits, down to "to" fractional digits (to <= from), and
// returns the truncated magnitude and the discarded remainder
// (always non-negative, since m is an unsigned magnitude).
func truncateTo(m *big.Int, from, to uint32) (*big.Int, *big.Int) {
	if to >= from {
		return m, new(big.Int)
	}
	d := pow10(from - to)
	q, r := new(big.Int).QuoRem(m, d, new(big.Int))
	return q, r
}

// Quo sets z to the quotient x/y truncated to scale fractional digits
// and returns z. It panics with a *dcerr.Error of kind DivByZero if y
// is zero, matching db47h/decimal's ErrNaN panic convention for
// otherwise-undefined results.
func (z *BigReal) Quo(x, y *BigReal, scale uint32) *BigReal {
	if y.IsZero() {
		panic(dcerr.New(dcerr.DivByZero, "divide by zero"))
	}
	// scale the dividend so that the integer division yields `scale`
	// fractional digits: (x.mant * 10**(y.scale + scale)) / (y.mant * 10**x.scale)
	num := scaleUp(x.mantissa(), y.scale+scale)
	den := scaleUp(y.mantissa(), x.scale)
	q := new(big.Int).Quo(num, den) // Quo truncates toward zero
	neg := (x.neg != y.neg) && q.Sign() != 0
	return z.SetMant(neg, q, scale)
}

// Rem sets z to x - (x/y)*y, where x/y is computed as by Quo at scale
// `divScale`, and returns z. Result scale is max(x.Scale(), y.Scale()+divScale).
// It panics with DivByZero if y is zero.
func (z *BigReal) Rem(x, y *BigReal, divScale uint32) *BigReal {
	if y.IsZero() {
		panic(dcerr.New(dcerr.DivByZero, "divide by zero"))
	}
	var q BigReal
	q.Quo(x, y, divScale)
	var p BigReal
	p.Mul(&q, y, umax32(x.scale, y.scale+divScale))
	return z.Sub(x, &p)
}

// DivRem sets z to the truncated integer quotient x/y (scale 0) and r
// to the remainder (as Rem, at divScale), and returns z, r. It panics
// with DivByZero if y is zero.
func (z *BigReal) DivRem(r, x, y *BigReal, divScale uint32) (*BigReal, *BigReal) {
	if y.IsZero() {
		panic(dcerr.New(dcerr.DivByZero, "divide by zero"))
	}
	var q BigReal
	q.Quo(x, y, 0)
	r.Rem(x, y, divScale)
	return z.Set(&q), r
}

// Sqrt sets z to the square root of x truncated to scale fractional
// digits, computed by Newton's method on the scaled integer mantissa,
// and returns z. It panics with NegativeSqrt if x is negative, matching
// db47h/decimal's Sqrt panic-on-negative convention.
func (z *BigReal) Sqrt(x *BigReal, scale uint32) *BigReal {
	if x.neg {
		panic(dcerr.New(dcerr.NegativeSqrt, "square root of negative number"))
	}
	if x.IsZero() {
		return z.SetMant(false, new(big.Int), scale)
	}
	// We want floor(sqrt(x.mant * 10**x.scale * 10**(2*scale-x.scale)))
	// i.e. integer sqrt of x scaled up by 2*scale so the root has
	// `scale` fractional digits.
	var shift int64 = int64(2*scale) - int64(x.scale)
	n := new(big.Int).Set(x.mantissa())
	if shift > 0 {
		n = scaleUp(n, uint32(shift))
	} else if shift < 0 {
		n, _ = truncateTo(n, uint32(-shift), 0)
	}
	root := isqrt(n)
	return z.SetMant(false, root, scale)
}

// isqrt returns floor(sqrt(n)) for n >= 0 via Newton's method on
// big.Int, seeded by the bit length of n (as in math/big's own Sqrt,
// which db47h/decimal's Sqrt mirrors for its initial-guess strategy).
func isqrt(n *big.Int) *big.Int {
	if n.Sign() == 0 {
		return new(big.Int)
	}
	x := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()+1)/2)
	two := big.NewInt(2)
	for {
		y := new(big.Int).Quo(n, x)
		y.Add(y, x)
		y.Quo(y, two)
		if y.Cmp(x) >= 0 {
			break
		}
		x = y
	}
	return x
}

// Pow sets z to x**n and returns z. n's fractional part, if any, must
// already be truncated to an integer by the caller before invoking Pow.
func (z *BigReal) Pow(x *BigReal, n int64, scale uint32) *BigReal {
	if n == 0 {
		return z.SetMant(false, big.NewInt(1), 0)
	}
	if n < 0 {
		// Compute the exact positive-exponent power first (no
		// truncation), then divide 1 by it at the caller's scale.
		pm := new(big.Int).Exp(x.mantissa(), big.NewInt(-n), nil)
		pneg := x.neg && (-n)%2 != 0 && pm.Sign() != 0
		var p BigReal
		p.SetMant(pneg, pm, x.scale*uint32(-n))
		one := NewInt(1)
		return z.Quo(one, &p, scale)
	}
	m := new(big.Int).Exp(x.mantissa(), big.NewInt(n), nil)
	neg := x.neg && n%2 != 0 && m.Sign() != 0
	rscale := minU32(x.scale*uint32(n), umax32(scale, x.scale))
	m, _ = truncateTo(m, x.scale*uint32(n), rscale)
	return z.SetMant(neg, m, rscale)
}

// Modexp sets z to (b**e) mod m, using square-and-multiply, and returns
// z. b, e and m must all be integers (scale 0); e must be non-negative
// and m non-zero, otherwise Modexp panics with NonInteger or DivByZero
// respectively.
func (z *BigReal) Modexp(b, e, m *BigReal) *BigReal {
	if b.scale != 0 || e.scale != 0 || m.scale != 0 {
		panic(dcerr.New(dcerr.NonInteger, "number is not an integer"))
	}
	if e.neg {
		panic(dcerr.New(dcerr.NonInteger, "negative exponent"))
	}
	if m.IsZero() {
		panic(dcerr.New(dcerr.DivByZero, "divide by zero"))
	}
	bm := signedMant(b)
	em := e.mantissa()
	mm := new(big.Int).Abs(m.mantissa())
	r := new(big.Int).Exp(bm, em, mm)
	neg := r.Sign() < 0
	r.Abs(r)
	return z.SetMant(neg, r, 0)
}
