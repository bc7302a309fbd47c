package lexer

import (
	"testing"

	"github.com/go-dc/dc4/token"
	"github.com/stretchr/testify/require"
)

func radix10() uint32 { return 10 }

func collect(t *testing.T, l *Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestNumbersAndArithmetic(t *testing.T) {
	l := New([]byte("2 3.5 +p"), radix10)
	toks := collect(t, l)

	want := []struct {
		kind token.Kind
		lit  string
		op   byte
	}{
		{token.Number, "2", 0},
		{token.Number, "3.5", 0},
		{token.Command, "", '+'},
		{token.Command, "", 'p'},
		{token.EOF, "", 0},
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w.kind, toks[i].Kind, "token %d", i)
		if w.kind == token.Number {
			require.Equal(t, w.lit, string(toks[i].Lit), "token %d", i)
		}
		if w.kind == token.Command {
			require.Equal(t, w.op, toks[i].Op, "token %d", i)
		}
	}
}

func TestBracketedStringNesting(t *testing.T) {
	l := New([]byte("[a[b]c]"), radix10)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.String, tok.Kind)
	require.Equal(t, "a[b]c", string(tok.Lit))
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	l := New([]byte("[abc"), radix10)
	_, err := l.Next()
	require.Error(t, err)
}

func TestCommentSkipped(t *testing.T) {
	l := New([]byte("1 # comment here\n2+"), radix10)
	toks := collect(t, l)
	require.Len(t, toks, 4) // 1, 2, +, EOF
}

func TestImmediateRegisterCommand(t *testing.T) {
	l := New([]byte("saX"), radix10)
	toks := collect(t, l)
	require.Equal(t, byte('s'), toks[0].Op)
	require.True(t, toks[0].HasReg)
	require.Equal(t, byte('a'), toks[0].Reg)
	require.Equal(t, byte('X'), toks[1].Op)
}

func TestConditionalWithElse(t *testing.T) {
	l := New([]byte(">aeb"), radix10)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, byte('>'), tok.Op)
	require.Equal(t, byte('a'), tok.Reg)
	require.True(t, tok.HasElse)
	require.Equal(t, byte('b'), tok.Else)
	require.False(t, tok.Negate)
}

func TestNegatedConditional(t *testing.T) {
	l := New([]byte("!<a"), radix10)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, byte('<'), tok.Op)
	require.True(t, tok.Negate)
	require.Equal(t, byte('a'), tok.Reg)
	require.False(t, tok.HasElse)
}

func TestBareShellBang(t *testing.T) {
	l := New([]byte("!"), radix10)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, byte('!'), tok.Op)
}

func TestNegativeNumberLiteral(t *testing.T) {
	l := New([]byte("_5"), radix10)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.Number, tok.Kind)
	require.Equal(t, "_5", string(tok.Lit))
}

func TestHexRadixCapturedAtLiteralStart(t *testing.T) {
	calls := 0
	radixes := []uint32{16, 10}
	rf := func() uint32 {
		r := radixes[calls]
		calls++
		return r
	}
	l := New([]byte("FF 10"), rf)
	toks := collect(t, l)
	require.Equal(t, uint32(16), toks[0].Radix)
	require.Equal(t, uint32(10), toks[1].Radix)
}
