// Package register implements dc's named registers: a byte-keyed
// family of stacks, each frame bundling a scalar Value with an
// optional sparse array.
package register

import "github.com/go-dc/dc4/value"

// Frame is one entry of a register's stack: a scalar and the sparse
// array that was active alongside it.
type Frame struct {
	Scalar value.Value
	Array  map[int64]value.Value
}

// Register is the stack of Frames addressed by a single register
// name. A nil/empty Register is the "never touched" state.
type Register []Frame

// Bank maps register names (one byte, 0-255) to their Register stack.
// Registers are allocated lazily on first use.
type Bank struct {
	regs map[byte]*Register
}

// NewBank returns an empty Bank.
func NewBank() *Bank {
	return &Bank{regs: make(map[byte]*Register)}
}

func (b *Bank) reg(name byte) *Register {
	r, ok := b.regs[name]
	if !ok {
		r = new(Register)
		b.regs[name] = r
	}
	return r
}

// ensureTop returns the top frame of name's register, creating an
// empty one (scalar 0, no array) if the register's stack is empty.
func (b *Bank) ensureTop(name byte) *Frame {
	r := b.reg(name)
	if len(*r) == 0 {
		*r = append(*r, Frame{Scalar: value.Zero()})
	}
	return &(*r)[len(*r)-1]
}

// Top returns the scalar of name's top frame and whether the register's
// stack holds any frame (an empty register reports ok=false).
func (b *Bank) Top(name byte) (value.Value, bool) {
	r, ok := b.regs[name]
	if !ok || len(*r) == 0 {
		return value.Value{}, false
	}
	return (*r)[len(*r)-1].Scalar, true
}

// SetTop overwrites the scalar of name's top frame (`s X`), creating a
// single frame if the register was empty.
func (b *Bank) SetTop(name byte, v value.Value) {
	b.ensureTop(name).Scalar = v
}

// Push pushes a new frame onto name's register stack holding v as its
// scalar and a fresh empty array (`S X`).
func (b *Bank) Push(name byte, v value.Value) {
	r := b.reg(name)
	*r = append(*r, Frame{Scalar: v})
}

// Pop pops the top frame of name's register stack (`L X`), returning
// its scalar and whether a frame was present to pop.
func (b *Bank) Pop(name byte) (value.Value, bool) {
	r, ok := b.regs[name]
	if !ok || len(*r) == 0 {
		return value.Value{}, false
	}
	top := (*r)[len(*r)-1]
	*r = (*r)[:len(*r)-1]
	return top.Scalar, true
}

// ArraySet stores v at index idx of name's top frame's array (`: X`),
// creating the top frame (and its array) if necessary.
func (b *Bank) ArraySet(name byte, idx int64, v value.Value) {
	f := b.ensureTop(name)
	if f.Array == nil {
		f.Array = make(map[int64]value.Value)
	}
	f.Array[idx] = v
}

// ArrayGet loads index idx of name's top frame's array (`; X`),
// returning the Number 0 Value if idx was never set.
func (b *Bank) ArrayGet(name byte, idx int64) value.Value {
	f := b.ensureTop(name)
	if f.Array == nil {
		return value.Zero()
	}
	if v, ok := f.Array[idx]; ok {
		return v
	}
	return value.Zero()
}
