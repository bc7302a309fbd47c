package value

import (
	"testing"

	decimal "github.com/go-dc/dc4"
	"github.com/stretchr/testify/assert"
)

func TestNewNumberAndText(t *testing.T) {
	v := NewNumber(decimal.NewInt(42))
	assert.True(t, v.IsNumber())
	assert.False(t, v.IsString())
	assert.Equal(t, []byte("42"), v.Text(10))
}

func TestNewStringAndText(t *testing.T) {
	v := NewString([]byte("hello"))
	assert.True(t, v.IsString())
	assert.False(t, v.IsNumber())
	assert.Equal(t, []byte("hello"), v.Text(10))
}

func TestZero(t *testing.T) {
	z := Zero()
	assert.True(t, z.IsNumber())
	assert.Equal(t, 0, z.Num.Sign())
}

func TestDupNumberDoesNotAliasSource(t *testing.T) {
	orig := NewNumber(decimal.NewInt(5))
	dup := orig.Dup()
	dup.Num.Add(dup.Num, decimal.NewInt(1))
	assert.Equal(t, "5", string(orig.Text(10)))
	assert.Equal(t, "6", string(dup.Text(10)))
}

func TestDupStringDoesNotAliasSource(t *testing.T) {
	orig := NewString([]byte("abc"))
	dup := orig.Dup()
	dup.Str[0] = 'z'
	assert.Equal(t, "abc", string(orig.Str))
	assert.Equal(t, "zbc", string(dup.Str))
}
