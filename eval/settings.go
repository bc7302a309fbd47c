package eval

import (
	"github.com/go-dc/dc4/dcerr"
	decimal "github.com/go-dc/dc4"
)

// Settings bundles dc's three pieces of global mutable state — input
// radix, output radix, and scale — and wraps decimal.BigReal's
// panic-on-undefined-result operations, recovering them into ordinary
// errors, the same role db47h/decimal's context.Context plays around
// its panicking Decimal methods.
type Settings struct {
	InputRadix  uint32
	OutputRadix uint32
	Scale       uint32
}

// NewSettings returns the default Settings: input/output radix 10,
// scale 0.
func NewSettings() *Settings {
	return &Settings{InputRadix: 10, OutputRadix: 10, Scale: 0}
}

// SetInputRadix validates and sets the input radix, which must be
// between 2 and 16 inclusive.
func (s *Settings) SetInputRadix(r uint32) error {
	if r < 2 || r > 16 {
		return dcerr.New(dcerr.OutOfRange, "input radix must be between 2 and 16")
	}
	s.InputRadix = r
	return nil
}

// SetOutputRadix validates and sets the output radix, which must be
// at least 2.
func (s *Settings) SetOutputRadix(r uint32) error {
	if r < 2 {
		return dcerr.New(dcerr.OutOfRange, "output radix must be at least 2")
	}
	s.OutputRadix = r
	return nil
}

// SetScale sets the scale. Every uint32 is a valid scale, so it never
// fails; the error return exists for symmetry with
// SetInputRadix/SetOutputRadix.
func (s *Settings) SetScale(sc uint32) error {
	s.Scale = sc
	return nil
}

// recoverDcerr runs f and converts a panicking *dcerr.Error into a
// returned error, mirroring db47h/decimal's context.Context wrapping
// of ErrNaN panics around its Decimal operations.
func recoverDcerr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*dcerr.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

// Add sets z = x+y. Never fails.
func (s *Settings) Add(z, x, y *decimal.BigReal) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Add(x, y) })
}

// Sub sets z = x-y. Never fails.
func (s *Settings) Sub(z, x, y *decimal.BigReal) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Sub(x, y) })
}

// Mul sets z = x*y truncated to at most s.Scale fractional digits
// (more are kept, up to the larger operand scale, if either operand
// already carried more precision).
func (s *Settings) Mul(z, x, y *decimal.BigReal) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Mul(x, y, s.Scale) })
}

// Quo sets z = x/y truncated to s.Scale fractional digits.
func (s *Settings) Quo(z, x, y *decimal.BigReal) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Quo(x, y, s.Scale) })
}

// Rem sets z = x - (x/y)*y, dividing at s.Scale.
func (s *Settings) Rem(z, x, y *decimal.BigReal) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Rem(x, y, s.Scale) })
}

// DivRem sets z to the integer quotient and r to the remainder of x/y.
func (s *Settings) DivRem(z, r, x, y *decimal.BigReal) (*decimal.BigReal, *decimal.BigReal, error) {
	return z, r, recoverDcerr(func() { z.DivRem(r, x, y, s.Scale) })
}

// Pow sets z = x**n. For n >= 0 the result is truncated the same way
// Mul truncates; for n < 0 it is 1 divided by x**-n at s.Scale.
func (s *Settings) Pow(z, x *decimal.BigReal, n int64) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Pow(x, n, s.Scale) })
}

// Modexp sets z = (b**e) mod m.
func (s *Settings) Modexp(z, b, e, m *decimal.BigReal) (*decimal.BigReal, error) {
	return z, recoverDcerr(func() { z.Modexp(b, e, m) })
}

// Sqrt sets z = sqrt(x) truncated to max(s.Scale, x.Scale()) fractional
// digits, so a square root is never less precise than its argument.
func (s *Settings) Sqrt(z, x *decimal.BigReal) (*decimal.BigReal, error) {
	scale := s.Scale
	if x.Scale() > scale {
		scale = x.Scale()
	}
	return z, recoverDcerr(func() { z.Sqrt(x, scale) })
}
