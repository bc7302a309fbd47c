// Package eval implements the dc stack machine: it pulls tokens from a
// chain of macro frames and dispatches them against a main Value
// stack, a register Bank and Settings.
package eval

import (
	"fmt"
	"io"

	decimal "github.com/go-dc/dc4"
	"github.com/go-dc/dc4/dcerr"
	"github.com/go-dc/dc4/lexer"
	"github.com/go-dc/dc4/register"
	"github.com/go-dc/dc4/token"
	"github.com/go-dc/dc4/value"
)

// LineReader is the external collaborator for the `?` command: the
// evaluator never buffers stdin itself.
type LineReader interface {
	ReadLine() ([]byte, error)
}

// Frame is a suspended tokenization over a macro body, or — for the
// bottom of the frame chain — over the process's external input.
type Frame struct {
	lex *lexer.Lexer
}

// opFunc is one entry of the dispatch table, grounded on the pack's
// `Operations map[rune]Operation` dispatch-by-character idiom,
// generalized to a fixed [256]opFunc array since dc's command
// alphabet is any byte 0-255.
type opFunc func(e *Evaluator, t token.Token) error

// Evaluator is one independent dc machine: its own stack, registers,
// settings and frame chain. Nothing is shared across instances.
type Evaluator struct {
	Stack  []value.Value
	Regs   *register.Bank
	Set    *Settings
	frames []*Frame

	out   io.Writer
	err   io.Writer
	input LineReader

	ops [256]opFunc
}

// New returns an Evaluator writing normal output to out and
// diagnostics to errw, reading `?` lines from input (which may be nil
// if the program never uses `?`).
func New(out, errw io.Writer, input LineReader) *Evaluator {
	e := &Evaluator{
		Regs:  register.NewBank(),
		Set:   NewSettings(),
		out:   out,
		err:   errw,
		input: input,
	}
	e.buildOps()
	return e
}

func (e *Evaluator) radix() uint32 { return e.Set.InputRadix }

// PushFrame pushes a new macro frame tokenizing body.
func (e *Evaluator) PushFrame(body []byte) {
	e.frames = append(e.frames, &Frame{lex: lexer.New(body, e.radix)})
}

// Start installs l as the bottom frame of the chain: the frame that
// reads from the external byte source rather than a macro body. It
// replaces whatever frame chain was left, so it is called once before
// each Run, one call per input source.
func (e *Evaluator) Start(l *lexer.Lexer) {
	e.frames = []*Frame{{lex: l}}
}

// StartBytes installs a fixed byte slice (an -e expression or a file's
// contents) as the bottom frame.
func (e *Evaluator) StartBytes(body []byte) {
	e.Start(lexer.New(body, e.radix))
}

// StartReader installs a lazily-read external source (e.g. a
// *bufio.Reader wrapping stdin) as the bottom frame, so interactive
// input for `?` can be read line-by-line as it arrives.
func (e *Evaluator) StartReader(src io.ByteScanner) {
	e.Start(lexer.NewReader(src, e.radix))
}

func (e *Evaluator) popFrame() {
	if len(e.frames) > 0 {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

// Run drains the frame chain, dispatching each token until the bottom
// frame reaches end-of-stream or a fatal error occurs.
func (e *Evaluator) Run() error {
	for len(e.frames) > 0 {
		top := e.frames[len(e.frames)-1]
		tok, lexErr := top.lex.Next()
		if lexErr != nil {
			if de, ok := lexErr.(*dcerr.Error); ok && de.Fatal() {
				return de
			}
			e.report(lexErr)
			e.popFrame()
			continue
		}
		if tok.Kind == token.EOF {
			e.popFrame()
			continue
		}
		if err := e.dispatch(tok); err != nil {
			de, ok := err.(*dcerr.Error)
			if !ok {
				return err
			}
			if de.Fatal() {
				return de
			}
			e.report(de)
		}
	}
	return nil
}

func (e *Evaluator) report(err error) {
	fmt.Fprintln(e.err, err.Error())
}

func (e *Evaluator) dispatch(tok token.Token) error {
	switch tok.Kind {
	case token.Number:
		v, ok := decimal.ParseBigReal(tok.Lit, tok.Radix)
		if !ok {
			return dcerr.Newf(dcerr.Internal, "malformed number literal %q", tok.Lit)
		}
		e.push(value.NewNumber(v))
		return nil
	case token.String:
		e.push(value.NewString(tok.Lit))
		return nil
	case token.Command:
		fn := e.ops[tok.Op]
		if fn == nil {
			return dcerr.Newf(dcerr.UnknownCommand, "%c (0x%02X) is unimplemented", tok.Op, tok.Op)
		}
		return fn(e, tok)
	}
	return nil
}

func (e *Evaluator) push(v value.Value) {
	e.Stack = append(e.Stack, v)
}

func (e *Evaluator) pop() (value.Value, bool) {
	n := len(e.Stack)
	if n == 0 {
		return value.Value{}, false
	}
	v := e.Stack[n-1]
	e.Stack = e.Stack[:n-1]
	return v, true
}

// popNumbers pops n Values off the stack as Numbers, top-first in the
// returned slice's last element, deepest-first in its first — or
// leaves the stack completely untouched and returns an error if there
// are fewer than n values or any of them is a String, so a failed
// operation never loses its operands.
func (e *Evaluator) popNumbers(n int) ([]*decimal.BigReal, error) {
	if len(e.Stack) < n {
		return nil, dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	top := e.Stack[len(e.Stack)-n:]
	for _, v := range top {
		if !v.IsNumber() {
			return nil, dcerr.New(dcerr.TypeMismatch, "type mismatch")
		}
	}
	nums := make([]*decimal.BigReal, n)
	for i, v := range top {
		nums[i] = v.Num
	}
	e.Stack = e.Stack[:len(e.Stack)-n]
	return nums, nil
}

func (e *Evaluator) popNumber() (*decimal.BigReal, error) {
	nums, err := e.popNumbers(1)
	if err != nil {
		return nil, err
	}
	return nums[0], nil
}

// execRegister runs name's top scalar as a macro if it is a String, or
// pushes a copy of it if it is a Number.
func (e *Evaluator) execRegister(name byte) error {
	v, ok := e.Regs.Top(name)
	if !ok {
		return dcerr.Newf(dcerr.StackUnderflow, "register %c (0x%02X) is empty", name, name)
	}
	if v.IsNumber() {
		e.push(v.Dup())
		return nil
	}
	e.PushFrame(v.Str)
	return nil
}

// requireNonNegInt validates that v is a non-negative integer Number,
// as required by the array index operand of `:`/`;`.
func requireNonNegInt(v value.Value) (int64, error) {
	if !v.IsNumber() {
		return 0, dcerr.New(dcerr.TypeMismatch, "type mismatch")
	}
	if !v.Num.IsInt() || v.Num.Sign() < 0 {
		return 0, dcerr.New(dcerr.NonInteger, "array index must be a non-negative integer")
	}
	idx := v.Num.IntPart()
	if !idx.IsInt64() {
		return 0, dcerr.New(dcerr.OutOfRange, "array index out of range")
	}
	return idx.Int64(), nil
}
