// Package value implements the tagged Value sum {Number, String} that
// flows through the main stack and registers.
package value

import decimal "github.com/go-dc/dc4"

// Kind identifies which arm of a Value is populated.
type Kind int

const (
	// Number holds a *decimal.BigReal.
	Number Kind = iota
	// String holds an arbitrary byte sequence.
	String
)

// Value is a tagged union of a Number or a String, the two shapes an
// entry on the main stack or in a register can take.
type Value struct {
	Kind Kind
	Num  *decimal.BigReal
	Str  []byte
}

// NewNumber wraps n as a Number Value.
func NewNumber(n *decimal.BigReal) Value {
	return Value{Kind: Number, Num: n}
}

// NewString wraps s as a String Value. s is not copied.
func NewString(s []byte) Value {
	return Value{Kind: String, Str: s}
}

// Zero returns the Number Value 0, scale 0.
func Zero() Value {
	return NewNumber(decimal.NewInt(0))
}

// IsNumber reports whether v holds a Number.
func (v Value) IsNumber() bool {
	return v.Kind == Number
}

// IsString reports whether v holds a String.
func (v Value) IsString() bool {
	return v.Kind == String
}

// Dup returns a value equal to v that shares no mutable state with it,
// so that later in-place arithmetic on one copy never aliases the
// other — duplicating a stack slot duplicates the value, not a
// reference to it.
func (v Value) Dup() Value {
	switch v.Kind {
	case Number:
		return NewNumber(new(decimal.BigReal).Copy(v.Num))
	default:
		s := make([]byte, len(v.Str))
		copy(s, v.Str)
		return NewString(s)
	}
}

// Text renders v for printing, formatting Numbers in the given output
// radix and returning String bytes verbatim.
func (v Value) Text(radix uint32) []byte {
	if v.Kind == String {
		return v.Str
	}
	return v.Num.Text(radix)
}
