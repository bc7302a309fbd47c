package register

import (
	"testing"

	decimal "github.com/go-dc/dc4"
	"github.com/go-dc/dc4/value"
	"github.com/stretchr/testify/assert"
)

func num(n int64) value.Value {
	return value.NewNumber(decimal.NewInt(n))
}

func TestTopOnEmptyRegisterReportsFalse(t *testing.T) {
	b := NewBank()
	_, ok := b.Top('x')
	assert.False(t, ok)
}

func TestSetTopThenTop(t *testing.T) {
	b := NewBank()
	b.SetTop('x', num(9))
	v, ok := b.Top('x')
	assert.True(t, ok)
	assert.Equal(t, "9", string(v.Text(10)))
}

func TestPushPopRoundTrip(t *testing.T) {
	b := NewBank()
	b.SetTop('r', num(1))
	b.Push('r', num(2))
	v, ok := b.Top('r')
	assert.True(t, ok)
	assert.Equal(t, "2", string(v.Text(10)))

	popped, ok := b.Pop('r')
	assert.True(t, ok)
	assert.Equal(t, "2", string(popped.Text(10)))

	v, ok = b.Top('r')
	assert.True(t, ok)
	assert.Equal(t, "1", string(v.Text(10)))
}

func TestPopOnEmptyRegisterReportsFalse(t *testing.T) {
	b := NewBank()
	_, ok := b.Pop('z')
	assert.False(t, ok)
}

func TestArraySetGet(t *testing.T) {
	b := NewBank()
	b.ArraySet('a', 7, num(42))
	assert.Equal(t, "42", string(b.ArrayGet('a', 7).Text(10)))
}

func TestArrayGetUnsetIndexIsZero(t *testing.T) {
	b := NewBank()
	assert.Equal(t, "0", string(b.ArrayGet('a', 3).Text(10)))
}

func TestArrayIsPerFrame(t *testing.T) {
	b := NewBank()
	b.ArraySet('a', 0, num(1))
	b.Push('a', num(0))
	assert.Equal(t, "0", string(b.ArrayGet('a', 0).Text(10)))
	b.Pop('a')
	assert.Equal(t, "1", string(b.ArrayGet('a', 0).Text(10)))
}
