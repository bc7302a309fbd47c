package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run evaluates prog against a fresh Evaluator and returns its stdout.
func run(t *testing.T, prog string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte(prog))
	err := ev.Run()
	require.NoError(t, err, "stderr: %s", errOut.String())
	return out.String()
}

func TestAddPrintsSum(t *testing.T) {
	assert.Equal(t, "5\n", run(t, "2 3 + p"))
}

func TestScalePersistsAcrossDivide(t *testing.T) {
	assert.Equal(t, ".3333333333\n", run(t, "10 k 1 3 / p"))
}

func TestInputRadixHex(t *testing.T) {
	assert.Equal(t, "255\n", run(t, "16 i FF p"))
}

func TestOutputRadixBinary(t *testing.T) {
	assert.Equal(t, "1010\n", run(t, "2 o 10 p"))
}

func TestBracketedStringPrintsLiterally(t *testing.T) {
	assert.Equal(t, "hello\n", run(t, "[hello] p"))
}

func TestConditionalExecutesRegisterMacroWhenTrue(t *testing.T) {
	assert.Equal(t, "yes\n", run(t, "[[yes]] sa 3 5 >a p"))
}

func TestDivByZeroLeavesOperandsOnStack(t *testing.T) {
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte("5 0 / p"))
	require.NoError(t, ev.Run())
	assert.Contains(t, errOut.String(), "divide by zero")
	assert.Equal(t, "0\n", out.String())
}

func TestExecuteMacroFromString(t *testing.T) {
	assert.Equal(t, "3\n", run(t, "[1 2 +] x p"))
}

func TestDupInvariant(t *testing.T) {
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte("5 d p"))
	require.NoError(t, ev.Run())
	assert.Equal(t, "5\n", out.String())
	assert.Len(t, ev.Stack, 2)
}

func TestClearInvariant(t *testing.T) {
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte("1 2 3 c"))
	require.NoError(t, ev.Run())
	assert.Empty(t, ev.Stack)
}

func TestDivModIdentity(t *testing.T) {
	// a b / b * a b % + == a, at scale 0
	assert.Equal(t, "17\n", run(t, "17 5 / 5 * 17 5 % + p"))
}

func TestRegisterStackRoundTrip(t *testing.T) {
	// [s] S r L r restores the scalar of register r
	assert.Equal(t, "9\n", run(t, "9 sr 7 Sr Lr lr p"))
}

func TestQuitTerminatesTwoInnermostFrames(t *testing.T) {
	// q inside the innermost macro unwinds it and its caller, so the
	// outer macro's trailing "6 p" is never reached.
	assert.Equal(t, "5\n", run(t, "[[5 p q]x 6 p]x"))
}

func TestUnknownCommandIsNonFatal(t *testing.T) {
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte("1 \x01 2 +p"))
	require.NoError(t, ev.Run())
	assert.Equal(t, "3\n", out.String())
	assert.Contains(t, errOut.String(), "unimplemented")
}

func TestShellBangIsFatal(t *testing.T) {
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte("!"))
	err := ev.Run()
	require.Error(t, err)
}

func TestArrayStoreLoad(t *testing.T) {
	assert.Equal(t, "42\n", run(t, "42 7 :x 7 ;x p"))
}

func TestExtendedCompareLtPushesBoolean(t *testing.T) {
	assert.Equal(t, "1\n0\n", run(t, "5 3 ( p 3 5 ( p"))
}

func TestExtendedCompareGtPushesBoolean(t *testing.T) {
	assert.Equal(t, "1\n0\n", run(t, "3 5 ) p 5 3 ) p"))
}

func TestExtendedCompareEqPushesBoolean(t *testing.T) {
	assert.Equal(t, "1\n0\n", run(t, "4 4 G p 4 5 G p"))
}

func TestExtendedCompareZeroIsLogicalNot(t *testing.T) {
	assert.Equal(t, "1\n0\n", run(t, "0 N p 1 N p"))
}

func TestStackUnderflowLeavesStackAlone(t *testing.T) {
	var out, errOut bytes.Buffer
	ev := New(&out, &errOut, nil)
	ev.StartBytes([]byte("5 + p"))
	require.NoError(t, ev.Run())
	assert.Contains(t, errOut.String(), "stack empty")
	assert.Equal(t, "5\n", out.String())
}
