// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string, radix uint32) *BigReal {
	t.Helper()
	v, ok := ParseBigReal([]byte(s), radix)
	require.True(t, ok, "ParseBigReal(%q, %d) failed", s, radix)
	return v
}

func TestParseBigReal(t *testing.T) {
	cases := []struct {
		in    string
		radix uint32
		want  string
	}{
		{"3", 10, "3"},
		{"3.14", 10, "3.14"},
		{"_5", 10, "-5"},
		{".5", 10, ".5"},
		{"5.", 10, "5"},
		{"10", 16, "16"},
		{"FF", 16, "255"},
	}
	for _, c := range cases {
		v := mustParse(t, c.in, c.radix)
		assert.Equal(t, c.want, v.String(), "parse %q radix %d", c.in, c.radix)
	}
}

func TestParseBigRealRejectsGarbage(t *testing.T) {
	for _, s := range []string{"_", "1.2.3", "12x", ""} {
		_, ok := ParseBigReal([]byte(s), 10)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestTextRadix(t *testing.T) {
	v := mustParse(t, "255", 10)
	assert.Equal(t, "FF", string(v.Text(16)))

	v = mustParse(t, "30", 10)
	assert.Equal(t, "1 13", string(v.Text(17)))
}

func TestAddSub(t *testing.T) {
	x := mustParse(t, "1.5", 10)
	y := mustParse(t, "2.25", 10)
	var z BigReal
	z.Add(x, y)
	assert.Equal(t, "3.75", z.String())
	assert.EqualValues(t, 2, z.Scale())

	var d BigReal
	d.Sub(x, y)
	assert.Equal(t, "-.75", d.String())
}

func TestAddPreservesTrailingZeroScale(t *testing.T) {
	x := mustParse(t, "1.50", 10)
	y := mustParse(t, "1", 10)
	var z BigReal
	z.Add(x, y)
	assert.EqualValues(t, 2, z.Scale())
	assert.Equal(t, "2.50", z.String())
}

func TestQuo(t *testing.T) {
	one := NewInt(1)
	three := NewInt(3)
	var z BigReal
	z.Quo(one, three, 10)
	assert.Equal(t, ".3333333333", z.String())
}

func TestQuoByZeroPanics(t *testing.T) {
	var z BigReal
	assert.Panics(t, func() {
		z.Quo(NewInt(1), NewInt(0), 5)
	})
}

func TestSqrt(t *testing.T) {
	var z BigReal
	z.Sqrt(NewInt(2), 5)
	assert.Equal(t, "1.41421", z.String())

	z.Sqrt(NewInt(4), 0)
	assert.Equal(t, "2", z.String())
}

func TestSqrtNegativePanics(t *testing.T) {
	var z BigReal
	assert.Panics(t, func() {
		z.Sqrt(NewInt(-1), 2)
	})
}

func TestPow(t *testing.T) {
	var z BigReal
	two := NewInt(2)
	z.Pow(two, 10, 0)
	assert.Equal(t, "1024", z.String())

	var inv BigReal
	inv.Pow(two, -2, 4)
	assert.Equal(t, ".2500", inv.String())
}

func TestModexp(t *testing.T) {
	var z BigReal
	z.Modexp(NewInt(4), NewInt(13), NewInt(497))
	assert.Equal(t, "445", z.String())
}

func TestCmpAndEqual(t *testing.T) {
	a := mustParse(t, "1.10", 10)
	b := mustParse(t, "1.1", 10)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, 1, NewInt(2).Cmp(NewInt(1)))
	assert.Equal(t, -1, NewInt(1).Cmp(NewInt(2)))
}

func TestZeroSignNormalized(t *testing.T) {
	var z BigReal
	z.Neg(NewInt(0))
	assert.False(t, z.Signbit())
}

func TestMarshalUnmarshalText(t *testing.T) {
	x := mustParse(t, "3.1400", 10)
	text, err := x.MarshalText()
	require.NoError(t, err)

	var y BigReal
	require.NoError(t, y.UnmarshalText(text))
	assert.True(t, x.Equal(&y))
	assert.EqualValues(t, x.Scale(), y.Scale())
}

func TestIsInt(t *testing.T) {
	assert.True(t, mustParse(t, "4.00", 10).IsInt())
	assert.False(t, mustParse(t, "4.01", 10).IsInt())
}
