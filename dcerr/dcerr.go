// Package dcerr defines the error taxonomy shared by the decimal, eval
// and lexer packages.
//
// Most Kinds are non-fatal: the evaluator prints them to its
// diagnostic sink and resumes at the next token, leaving operands
// untouched. ShellRejected and Internal are fatal: they unwind
// Evaluator.Run and cause the enclosing invocation to exit non-zero.
package dcerr

import "fmt"

// Kind identifies a class of dc error.
type Kind int

// The error kinds dc operations can fail with.
const (
	StackUnderflow Kind = iota
	TypeMismatch
	DivByZero
	NegativeSqrt
	NonInteger
	OutOfRange
	UnknownCommand
	UnbalancedBracket
	ShellRejected
	Internal
)

func (k Kind) String() string {
	switch k {
	case StackUnderflow:
		return "stack empty"
	case TypeMismatch:
		return "type mismatch"
	case DivByZero:
		return "divide by zero"
	case NegativeSqrt:
		return "square root of negative number"
	case NonInteger:
		return "number is not an integer"
	case OutOfRange:
		return "out of range"
	case UnknownCommand:
		return "unimplemented"
	case UnbalancedBracket:
		return "unterminated string"
	case ShellRejected:
		return "shell commands not supported"
	case Internal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// Error is a dc diagnostic. It implements the error interface.
type Error struct {
	Kind Kind
	Msg  string
}

// New returns a new *Error of the given kind with message msg.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Newf is like New but formats its message like fmt.Sprintf.
func Newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

// Fatal reports whether e should unwind the evaluator instead of being
// printed and resumed from. Only ShellRejected and Internal are fatal.
func (e *Error) Fatal() bool {
	return e.Kind == ShellRejected || e.Kind == Internal
}

// As reports whether err is a *Error of kind k.
func As(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
