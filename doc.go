// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements the exact, arbitrary-precision fixed-scale
decimal arithmetic needed by a dc-compatible calculator.

A BigReal represents a signed value sign * mant * 10**(-scale), where
mant is a non-negative arbitrary-precision integer and scale (called F,
the "fractional digit count", in the dc literature) is the number of
digits to its right of the decimal point. Unlike a floating-point
Decimal, a BigReal never rounds on its own: every operation computes an
exact result and then truncates it toward zero to a caller-chosen
scale, matching the semantics of dc's K-register-driven arithmetic.

The zero value for a BigReal corresponds to 0:

    x := new(BigReal)  // x is a *BigReal of value 0

Setters, numeric operations and predicates are represented as methods
of the form:

    func (z *BigReal) SetV(v V) *BigReal               // z = v
    func (z *BigReal) Unary(x *BigReal) *BigReal        // z = unary x
    func (z *BigReal) Binary(x, y *BigReal, s uint32) *BigReal  // z = (x binary y), truncated to scale s

For unary and binary operations, the result is the receiver (usually
named z); if it is one of the operands x or y it may be safely
overwritten (and its memory reused). For instance, given BigReals a, b
and c,

    c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever
value was held in c before. Operations permit aliasing of parameters,
so it is fine to write

    sum.Add(sum, x)

to accumulate values x in a sum. Methods of this form return the
incoming receiver to enable call chaining.

Methods which don't require a result value to be passed in (for
instance, BigReal.Sign) simply return the result, with the receiver as
the first operand:

    func (x *BigReal) Sign() int

ParseBigReal parses a dc numeral literal in a given input radix; Text
renders a BigReal back in a given output radix, following dc's own
formatting rules (contiguous hex glyphs for radix <= 16, space-separated
decimal groups above that, with long lines wrapped at 69 columns).

Operations that have no well-defined result — division by zero, square
root of a negative number, a non-integer argument to an operation that
requires one — panic with a *github.com/go-dc/dc4/dcerr.Error rather
than returning an error, mirroring the panic/recover convention used
internally by this package's arithmetic. Callers at the evaluator layer
recover from these panics and turn them into the diagnostics dc prints
to its error stream.
*/
package decimal
