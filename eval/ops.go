package eval

import (
	"fmt"
	"math/big"

	decimal "github.com/go-dc/dc4"
	"github.com/go-dc/dc4/dcerr"
	"github.com/go-dc/dc4/token"
	"github.com/go-dc/dc4/value"
)

// buildOps installs dc's command table into e.ops, grounded on the
// pack's `Operations map[rune]Operation` dispatch-by-character idiom,
// adapted to an array since dc's command alphabet is any byte 0-255.
func (e *Evaluator) buildOps() {
	e.ops['+'] = opBinary((*Settings).Add)
	e.ops['-'] = opBinary((*Settings).Sub)
	e.ops['*'] = opBinary((*Settings).Mul)
	e.ops['/'] = opBinary((*Settings).Quo)
	e.ops['%'] = opBinary((*Settings).Rem)
	e.ops['~'] = opDivRem
	e.ops['^'] = opPow
	e.ops['|'] = opModexp
	e.ops['v'] = opSqrt

	e.ops['d'] = opDup
	e.ops['r'] = opSwap
	e.ops['c'] = opClear
	e.ops['z'] = opStackDepth
	e.ops['Z'] = opNumDigits
	e.ops['X'] = opNumFrxDigits
	e.ops['a'] = opAsciify

	e.ops['p'] = opPrint
	e.ops['n'] = opPrintNoNewline
	e.ops['P'] = opPrintBytesPop
	e.ops['f'] = opPrintStack

	e.ops['s'] = opStore
	e.ops['l'] = opLoad
	e.ops['S'] = opPushRegStack
	e.ops['L'] = opPopRegStack
	e.ops[':'] = opStoreRegArray
	e.ops[';'] = opLoadRegArray

	e.ops['<'] = opCompare
	e.ops['>'] = opCompare
	e.ops['='] = opCompare
	e.ops['('] = opCompareBool('<')
	e.ops[')'] = opCompareBool('>')
	e.ops['G'] = opCompareBool('=')
	e.ops['N'] = opCompareZero

	e.ops['x'] = opExecuteMacro
	e.ops['q'] = opQuit
	e.ops['Q'] = opMultiQuit
	e.ops['!'] = opShell

	e.ops['i'] = opSetInputRadix
	e.ops['I'] = opGetInputRadix
	e.ops['o'] = opSetOutputRadix
	e.ops['O'] = opGetOutputRadix
	e.ops['k'] = opSetScale
	e.ops['K'] = opGetScale

	e.ops['?'] = opInput
	e.ops['@'] = opVersion
}

// opBinary adapts a Settings binary arithmetic method (Add/Sub/Mul/
// Quo/Rem, all of the shape func(z, x, y *decimal.BigReal) (*decimal.BigReal, error))
// into an opFunc: pop two Numbers a (deeper) and b (top), compute
// a op b, and push the result — or restore a and b untouched on
// failure.
func opBinary(f func(s *Settings, z, x, y *decimal.BigReal) (*decimal.BigReal, error)) opFunc {
	return func(e *Evaluator, t token.Token) error {
		nums, err := e.popNumbers(2)
		if err != nil {
			return err
		}
		a, b := nums[0], nums[1]
		z := new(decimal.BigReal)
		if _, err := f(e.Set, z, a, b); err != nil {
			e.push(value.NewNumber(a))
			e.push(value.NewNumber(b))
			return err
		}
		e.push(value.NewNumber(z))
		return nil
	}
}

func opDivRem(e *Evaluator, t token.Token) error {
	nums, err := e.popNumbers(2)
	if err != nil {
		return err
	}
	a, b := nums[0], nums[1]
	q, r := new(decimal.BigReal), new(decimal.BigReal)
	if _, _, err := e.Set.DivRem(q, r, a, b); err != nil {
		e.push(value.NewNumber(a))
		e.push(value.NewNumber(b))
		return err
	}
	e.push(value.NewNumber(q))
	e.push(value.NewNumber(r))
	return nil
}

func opPow(e *Evaluator, t token.Token) error {
	nums, err := e.popNumbers(2)
	if err != nil {
		return err
	}
	base, exp := nums[0], nums[1]
	n := exp.IntPart()
	if !n.IsInt64() {
		e.push(value.NewNumber(base))
		e.push(value.NewNumber(exp))
		return dcerr.New(dcerr.OutOfRange, "exponent out of range")
	}
	z := new(decimal.BigReal)
	if _, err := e.Set.Pow(z, base, n.Int64()); err != nil {
		e.push(value.NewNumber(base))
		e.push(value.NewNumber(exp))
		return err
	}
	e.push(value.NewNumber(z))
	return nil
}

func opModexp(e *Evaluator, t token.Token) error {
	nums, err := e.popNumbers(3)
	if err != nil {
		return err
	}
	b, exp, m := nums[0], nums[1], nums[2]
	z := new(decimal.BigReal)
	if _, err := e.Set.Modexp(z, b, exp, m); err != nil {
		e.push(value.NewNumber(b))
		e.push(value.NewNumber(exp))
		e.push(value.NewNumber(m))
		return err
	}
	e.push(value.NewNumber(z))
	return nil
}

func opSqrt(e *Evaluator, t token.Token) error {
	x, err := e.popNumber()
	if err != nil {
		return err
	}
	z := new(decimal.BigReal)
	if _, err := e.Set.Sqrt(z, x); err != nil {
		e.push(value.NewNumber(x))
		return err
	}
	e.push(value.NewNumber(z))
	return nil
}

func opDup(e *Evaluator, t token.Token) error {
	if len(e.Stack) == 0 {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	e.push(e.Stack[len(e.Stack)-1].Dup())
	return nil
}

func opSwap(e *Evaluator, t token.Token) error {
	n := len(e.Stack)
	if n < 2 {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	e.Stack[n-1], e.Stack[n-2] = e.Stack[n-2], e.Stack[n-1]
	return nil
}

func opClear(e *Evaluator, t token.Token) error {
	e.Stack = e.Stack[:0]
	return nil
}

func opStackDepth(e *Evaluator, t token.Token) error {
	e.push(value.NewNumber(decimal.NewInt(int64(len(e.Stack)))))
	return nil
}

func opNumDigits(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	var n int64
	if v.IsNumber() {
		n = v.Num.NumDigits()
	} else {
		n = int64(len(v.Str))
	}
	e.push(value.NewNumber(decimal.NewInt(n)))
	return nil
}

func opNumFrxDigits(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	var n int64
	if v.IsNumber() {
		n = int64(v.Num.Scale())
	}
	e.push(value.NewNumber(decimal.NewInt(n)))
	return nil
}

var bigTwoFiveSixLocal = big.NewInt(256)

func opAsciify(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	if v.IsNumber() {
		m := new(big.Int).Mod(v.Num.IntPart(), bigTwoFiveSixLocal)
		e.push(value.NewString([]byte{byte(m.Int64())}))
		return nil
	}
	if len(v.Str) == 0 {
		e.push(value.NewString(nil))
		return nil
	}
	e.push(value.NewString([]byte{v.Str[0]}))
	return nil
}

func opPrint(e *Evaluator, t token.Token) error {
	if len(e.Stack) == 0 {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	top := e.Stack[len(e.Stack)-1]
	fmt.Fprintf(e.out, "%s\n", top.Text(e.Set.OutputRadix))
	return nil
}

func opPrintNoNewline(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	fmt.Fprintf(e.out, "%s", v.Text(e.Set.OutputRadix))
	return nil
}

func opPrintBytesPop(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	if v.IsString() {
		e.out.Write(v.Str)
		return nil
	}
	ip := new(big.Int).Abs(v.Num.IntPart())
	e.out.Write(ip.Bytes())
	return nil
}

func opPrintStack(e *Evaluator, t token.Token) error {
	for i := len(e.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(e.out, "%s\n", e.Stack[i].Text(e.Set.OutputRadix))
	}
	return nil
}

func opStore(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	e.Regs.SetTop(t.Reg, v)
	return nil
}

func opLoad(e *Evaluator, t token.Token) error {
	v, ok := e.Regs.Top(t.Reg)
	if !ok {
		return dcerr.Newf(dcerr.StackUnderflow, "register %c (0x%02X) is empty", t.Reg, t.Reg)
	}
	e.push(v.Dup())
	return nil
}

func opPushRegStack(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	e.Regs.Push(t.Reg, v)
	return nil
}

func opPopRegStack(e *Evaluator, t token.Token) error {
	v, ok := e.Regs.Pop(t.Reg)
	if !ok {
		return dcerr.Newf(dcerr.StackUnderflow, "register %c (0x%02X) is empty", t.Reg, t.Reg)
	}
	e.push(v)
	return nil
}

func opStoreRegArray(e *Evaluator, t token.Token) error {
	idxVal, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	idx, err := requireNonNegInt(idxVal)
	if err != nil {
		e.push(idxVal)
		return err
	}
	v, ok := e.pop()
	if !ok {
		e.push(idxVal)
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	e.Regs.ArraySet(t.Reg, idx, v)
	return nil
}

func opLoadRegArray(e *Evaluator, t token.Token) error {
	idxVal, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	idx, err := requireNonNegInt(idxVal)
	if err != nil {
		e.push(idxVal)
		return err
	}
	e.push(e.Regs.ArrayGet(t.Reg, idx).Dup())
	return nil
}

// opCompare implements `<`, `>`, `=` and their `!`-negated and
// `xey`-else-register forms: pop two Numbers, the top
// one (a) and the one below it (b), evaluate the predicate comparing
// a against b in the direction named by the operator itself — `3 5
// >r` executes r because the top of the stack (5) is greater than the
// value below it (3) — and execute the chosen register's scalar as a
// macro (or push it, if it's a Number).
func opCompare(e *Evaluator, t token.Token) error {
	nums, err := e.popNumbers(2)
	if err != nil {
		return err
	}
	b, a := nums[0], nums[1]
	cmp := a.Cmp(b)
	var hold bool
	switch t.Op {
	case '<':
		hold = cmp < 0
	case '>':
		hold = cmp > 0
	case '=':
		hold = cmp == 0
	}
	if t.Negate {
		hold = !hold
	}
	switch {
	case hold:
		return e.execRegister(t.Reg)
	case t.HasElse:
		return e.execRegister(t.Else)
	default:
		return nil
	}
}

// opCompareBool is the extended (register-free) form of the
// comparison commands `(`, `)` and `G`: pop two Numbers, compare them
// in the same direction opCompare does for the matching letter
// operator, and push 1 or 0 rather than executing a register.
func opCompareBool(op byte) opFunc {
	return func(e *Evaluator, t token.Token) error {
		nums, err := e.popNumbers(2)
		if err != nil {
			return err
		}
		b, a := nums[0], nums[1]
		cmp := a.Cmp(b)
		var hold bool
		switch op {
		case '<':
			hold = cmp < 0
		case '>':
			hold = cmp > 0
		case '=':
			hold = cmp == 0
		}
		e.push(value.NewNumber(decimal.NewInt(boolInt(hold))))
		return nil
	}
}

// opCompareZero is `N`: pop a Number and push 1 if it is zero, 0
// otherwise (logical not).
func opCompareZero(e *Evaluator, t token.Token) error {
	x, err := e.popNumber()
	if err != nil {
		return err
	}
	e.push(value.NewNumber(decimal.NewInt(boolInt(x.IsZero()))))
	return nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func opExecuteMacro(e *Evaluator, t token.Token) error {
	v, ok := e.pop()
	if !ok {
		return dcerr.New(dcerr.StackUnderflow, "stack empty")
	}
	if v.IsString() {
		e.PushFrame(v.Str)
		return nil
	}
	e.push(v)
	return nil
}

// opQuit terminates the two innermost macro frames, or the whole
// program if fewer than two remain.
func opQuit(e *Evaluator, t token.Token) error {
	n := 2
	if n > len(e.frames) {
		n = len(e.frames)
	}
	e.frames = e.frames[:len(e.frames)-n]
	return nil
}

// opMultiQuit pops a Number n and terminates min(n, depth) frames.
func opMultiQuit(e *Evaluator, t token.Token) error {
	nv, err := e.popNumber()
	if err != nil {
		return err
	}
	ip := nv.IntPart()
	n := len(e.frames)
	if ip.IsInt64() && int(ip.Int64()) < n {
		n = int(ip.Int64())
	}
	if n < 0 {
		n = 0
	}
	e.frames = e.frames[:len(e.frames)-n]
	return nil
}

func opShell(e *Evaluator, t token.Token) error {
	return dcerr.New(dcerr.ShellRejected, "shell commands not supported")
}

func opSetInputRadix(e *Evaluator, t token.Token) error {
	v, err := e.popNumber()
	if err != nil {
		return err
	}
	r := v.IntPart()
	if !r.IsInt64() {
		e.push(value.NewNumber(v))
		return dcerr.New(dcerr.OutOfRange, "input radix must be between 2 and 16")
	}
	if err := e.Set.SetInputRadix(uint32(r.Int64())); err != nil {
		e.push(value.NewNumber(v))
		return err
	}
	return nil
}

func opGetInputRadix(e *Evaluator, t token.Token) error {
	e.push(value.NewNumber(decimal.NewInt(int64(e.Set.InputRadix))))
	return nil
}

func opSetOutputRadix(e *Evaluator, t token.Token) error {
	v, err := e.popNumber()
	if err != nil {
		return err
	}
	r := v.IntPart()
	if !r.IsInt64() {
		e.push(value.NewNumber(v))
		return dcerr.New(dcerr.OutOfRange, "output radix must be at least 2")
	}
	if err := e.Set.SetOutputRadix(uint32(r.Int64())); err != nil {
		e.push(value.NewNumber(v))
		return err
	}
	return nil
}

func opGetOutputRadix(e *Evaluator, t token.Token) error {
	e.push(value.NewNumber(decimal.NewInt(int64(e.Set.OutputRadix))))
	return nil
}

func opSetScale(e *Evaluator, t token.Token) error {
	v, err := e.popNumber()
	if err != nil {
		return err
	}
	sc := v.IntPart()
	if !sc.IsInt64() || sc.Sign() < 0 {
		e.push(value.NewNumber(v))
		return dcerr.New(dcerr.OutOfRange, "scale must be non-negative")
	}
	e.Set.SetScale(uint32(sc.Int64()))
	return nil
}

func opGetScale(e *Evaluator, t token.Token) error {
	e.push(value.NewNumber(decimal.NewInt(int64(e.Set.Scale))))
	return nil
}

func opInput(e *Evaluator, t token.Token) error {
	if e.input == nil {
		return nil
	}
	line, err := e.input.ReadLine()
	if err != nil {
		return nil
	}
	e.PushFrame(line)
	return nil
}

func opVersion(e *Evaluator, t token.Token) error {
	fmt.Fprintln(e.out, "dc4 1.0")
	return nil
}
