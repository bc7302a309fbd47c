// Package lexer implements dc's restartable token segmenter,
// generalized from the pack's rune-oriented position/readPosition/ch
// lexer to a byte-oriented one that can wrap either a macro body
// ([]byte) or the external, lazily-read byte source of the bottom
// frame (io.ByteScanner).
package lexer

import (
	"bytes"
	"io"

	"github.com/go-dc/dc4/dcerr"
	"github.com/go-dc/dc4/token"
)

// Lexer pulls bytes from a ByteScanner one at a time, tracking the
// current byte (ch) the way the pack's rune lexer tracks its current
// rune.
type Lexer struct {
	src       io.ByteScanner
	ch        byte
	eof       bool
	radixFunc func() uint32
}

// New returns a Lexer over a fixed byte slice (a macro body).
func New(buf []byte, radixFunc func() uint32) *Lexer {
	return NewReader(bytes.NewReader(buf), radixFunc)
}

// NewReader returns a Lexer over any io.ByteScanner, e.g. a
// bufio.Reader wrapping the process's bottom, external input.
func NewReader(src io.ByteScanner, radixFunc func() uint32) *Lexer {
	l := &Lexer{src: src, radixFunc: radixFunc}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	b, err := l.src.ReadByte()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}
	l.eof = false
	l.ch = b
}

func (l *Lexer) peekChar() (byte, bool) {
	b, err := l.src.ReadByte()
	if err != nil {
		return 0, false
	}
	l.src.UnreadByte()
	return b, true
}

// isDigit reports whether c is a numeral glyph, always hex glyphs
// 0-9A-F regardless of the current input radix.
func isDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'F')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Next returns the next Token, or a non-nil error if the input ends
// inside an unterminated bracketed string (dcerr.UnbalancedBracket).
func (l *Lexer) Next() (token.Token, error) {
	for {
		for isWhitespace(l.ch) && !l.eof {
			l.readChar()
		}
		if l.eof {
			return token.Token{Kind: token.EOF}, nil
		}
		if l.ch == '#' {
			l.skipComment()
			continue
		}
		break
	}

	switch {
	case l.ch == '[':
		return l.readString()
	case l.ch == '.' || isDigit(l.ch):
		return l.readNumber(), nil
	case l.ch == '_':
		if b, ok := l.peekChar(); ok && (isDigit(b) || b == '.') {
			return l.readNumber(), nil
		}
		return l.readCommand(), nil
	default:
		return l.readCommand(), nil
	}
}

func (l *Lexer) skipComment() {
	for !l.eof && l.ch != '\n' {
		l.readChar()
	}
	if !l.eof {
		l.readChar() // consume the newline
	}
}

// readString consumes a bracketed string starting at the current '[',
// honoring nested bracket depth — nesting is the only escape mechanism
// dc strings have.
func (l *Lexer) readString() (token.Token, error) {
	l.readChar() // consume opening '['
	depth := 1
	var buf []byte
	for {
		if l.eof {
			return token.Token{}, dcerr.New(dcerr.UnbalancedBracket, "unterminated string")
		}
		switch l.ch {
		case '[':
			depth++
			buf = append(buf, l.ch)
			l.readChar()
		case ']':
			depth--
			if depth == 0 {
				l.readChar()
				return token.Token{Kind: token.String, Lit: buf}, nil
			}
			buf = append(buf, l.ch)
			l.readChar()
		default:
			buf = append(buf, l.ch)
			l.readChar()
		}
	}
}

// readNumber consumes a literal matching `_?[0-9A-F]*(\.[0-9A-F]*)?`,
// capturing the input radix in effect at this point: a later radix
// change never retroactively reinterprets a literal already read.
func (l *Lexer) readNumber() token.Token {
	radix := l.radixFunc()
	var buf []byte
	if l.ch == '_' {
		buf = append(buf, l.ch)
		l.readChar()
	}
	for isDigit(l.ch) {
		buf = append(buf, l.ch)
		l.readChar()
	}
	if l.ch == '.' {
		buf = append(buf, l.ch)
		l.readChar()
		for isDigit(l.ch) {
			buf = append(buf, l.ch)
			l.readChar()
		}
	}
	return token.Token{Kind: token.Number, Lit: buf, Radix: radix}
}

// readCommand consumes a single command character, assembling the
// two-/three-byte immediate-register and conditional-with-else forms.
func (l *Lexer) readCommand() token.Token {
	op := l.ch
	l.readChar()

	switch op {
	case 's', 'l', 'S', 'L', ':', ';':
		reg := l.ch
		hasReg := !l.eof
		if hasReg {
			l.readChar()
		}
		return token.Token{Kind: token.Command, Op: op, Reg: reg, HasReg: hasReg}

	case '<', '>', '=':
		return l.readConditional(op, false)

	case '!':
		if l.ch == '<' || l.ch == '>' || l.ch == '=' {
			cmp := l.ch
			l.readChar()
			return l.readConditional(cmp, true)
		}
		return token.Token{Kind: token.Command, Op: '!'}

	default:
		return token.Token{Kind: token.Command, Op: op}
	}
}

// readConditional assembles the register and optional `e`-introduced
// else-register of a comparison command, having already consumed the
// comparison operator itself.
func (l *Lexer) readConditional(op byte, negate bool) token.Token {
	reg := l.ch
	if !l.eof {
		l.readChar()
	}
	t := token.Token{Kind: token.Command, Op: op, Reg: reg, HasReg: true, Negate: negate}
	if l.ch == 'e' {
		l.readChar()
		t.Else = l.ch
		t.HasElse = true
		if !l.eof {
			l.readChar()
		}
	}
	return t
}
