// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvnum/number"
)

// NumberSuite covers construction, the cast-style accessors and formatting.
type NumberSuite struct {
	suite.Suite
}

func (s *NumberSuite) TestKinds() {
	cases := []struct {
		n    number.Number
		kind number.Kind
	}{
		{number.Of(true), number.Bool},
		{number.Of(1), number.Int},
		{number.Of(int8(1)), number.Int8},
		{number.Of(int16(1)), number.Int16},
		{number.Of(int32(1)), number.Int32},
		{number.Of(uint(1)), number.Uint},
		{number.Of(uint8(1)), number.Uint8},
		{number.Of(uint16(1)), number.Uint16},
		{number.Of(uint32(1)), number.Uint32},
		{number.Of(float32(1)), number.Float},
		{number.Of(1.0), number.Double},
		{number.Number{}, number.Bool},
	}
	for _, tc := range cases {
		s.Equal(tc.kind, tc.n.Kind(), tc.kind.String())
	}
	s.Equal("Uint16", number.Uint16.String())
	s.Equal("Kind(?)", number.Kind(200).String())
}

func (s *NumberSuite) TestIntegerCasts() {
	n := number.Of(int16(300))
	s.Equal(int8(44), n.Int8())
	s.Equal(uint8(44), n.Uint8())
	s.Equal(int32(300), n.Int32())
	s.Equal(300.0, n.Double())
	s.True(n.Bool())

	neg := number.Of(int8(-1))
	s.Equal(uint16(math.MaxUint16), neg.Uint16())
	s.Equal(uint(math.MaxUint), neg.Uint())
	s.Equal(-1, neg.Int())
	s.Equal(float32(-1), neg.Float())

	big := number.Of(uint8(200))
	s.Equal(int8(-56), big.Int8())
	s.Equal(200, big.Int())

	s.Equal(uint32(1), number.Of(true).Uint32())
	s.Equal(0, number.Of(false).Int())
	s.Equal(1.0, number.Of(true).Double())
	s.False(number.Of(uint32(0)).Bool())
}

func (s *NumberSuite) TestFloatCastsSaturate() {
	s.Equal(int8(3), number.Of(3.9).Int8())
	s.Equal(int8(-3), number.Of(-3.9).Int8())
	s.Equal(int8(math.MaxInt8), number.Of(1000.0).Int8())
	s.Equal(int8(math.MinInt8), number.Of(-1000.0).Int8())
	s.Equal(uint8(0), number.Of(-5.5).Uint8())
	s.Equal(uint32(math.MaxUint32), number.Of(float32(1e20)).Uint32())
	s.Equal(math.MaxInt, number.Of(math.Inf(1)).Int())
	s.Equal(math.MinInt, number.Of(math.Inf(-1)).Int())
	s.Equal(uint(math.MaxUint), number.Of(1e30).Uint())
	s.Equal(0, number.Of(math.NaN()).Int())
	s.Equal(uint16(0), number.Of(float32(math.NaN())).Uint16())

	s.True(number.Of(math.NaN()).Bool())
	s.False(number.Of(math.Copysign(0, -1)).Bool())
	s.Equal(float32(0.1), number.Of(0.1).Float())
	s.Equal(float64(float32(0.1)), number.Of(float32(0.1)).Double())
	s.True(math.IsInf(float64(number.Of(1e300).Float()), 1))
}

func (s *NumberSuite) TestString() {
	cases := map[string]number.Number{
		"true":                  number.Of(true),
		"false":                 number.Number{},
		"-42":                   number.Of(int32(-42)),
		"4294967295":            number.Of(uint32(math.MaxUint32)),
		"18446744073709551615":  number.Of(uint(math.MaxUint64)),
		"1":                     number.Of(float32(1)),
		"0.1":                   number.Of(float32(0.1)),
		"0.25":                  number.Of(0.25),
		"100000000000000000000": number.Of(1e20),
		"-0":                    number.Of(math.Copysign(0, -1)),
		"inf":                   number.Of(math.Inf(1)),
		"-inf":                  number.Of(float32(math.Inf(-1))),
		"NaN":                   number.Of(math.NaN()),
	}
	for want, n := range cases {
		s.Equal(want, n.String(), n.Kind().String())
	}
}

func TestNumberSuite(t *testing.T) {
	suite.Run(t, new(NumberSuite))
}

func TestCompareAndEqual(t *testing.T) {
	t.Parallel()

	ordered := []number.Number{
		number.Of(false), number.Of(true),
		number.Of(-5), number.Of(7),
		number.Of(int8(-128)),
		number.Of(int32(0)),
		number.Of(uint(0)), number.Of(uint(9)),
		number.Of(uint32(1)),
		number.Of(float32(-1)), number.Of(float32(2)),
		number.Of(math.Inf(-1)), number.Of(0.5),
	}
	for a := range ordered {
		for b := range ordered {
			c, ok := ordered[a].Compare(ordered[b])
			require.True(t, ok)
			want := 0
			switch {
			case a < b:
				want = -1
			case a > b:
				want = 1
			}
			assert.Equal(t, want, c, "%v vs %v", ordered[a], ordered[b])
			assert.Equal(t, a == b, ordered[a].Equal(ordered[b]))
		}
	}

	// kind first: a large Int8 still sorts before a small Uint
	c, ok := number.Of(int8(100)).Compare(number.Of(uint(1)))
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	nan := number.Of(math.NaN())
	_, ok = nan.Compare(number.Of(1.0))
	assert.False(t, ok)
	assert.False(t, nan.Equal(nan))
	// NaN still orders against another kind
	c, ok = nan.Compare(number.Of(float32(1)))
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	assert.True(t, number.Of(math.Copysign(0, -1)).Equal(number.Of(0.0)))
	assert.False(t, number.Of(1).Equal(number.Of(int8(1))))
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want number.Number
	}{
		{"true", number.Of(true)},
		{"false", number.Of(false)},
		{"42", number.Of(42)},
		{"-7", number.Of(-7)},
		{"+8", number.Of(8)},
		{"9223372036854775807", number.Of(math.MaxInt64)},
		{"9223372036854775808", number.Of(uint(1 << 63))},
		{"18446744073709551615", number.Of(uint(math.MaxUint64))},
		{"18446744073709551616", number.Of(float32(18446744073709551616))},
		{"2.5", number.Of(float32(2.5))},
		{"-0.125", number.Of(float32(-0.125))},
		{"1e10", number.Of(float32(1e10))},
		{"1e300", number.Of(1e300)},
		{"inf", number.Of(float32(math.Inf(1)))},
	}
	for _, tc := range cases {
		got, err := number.Parse(tc.in)
		require.NoError(t, err, tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", tc.in, diff)
		}
		assert.Equal(t, tc.want.Kind(), got.Kind(), tc.in)
	}

	nan, err := number.Parse("NaN")
	require.NoError(t, err)
	assert.Equal(t, number.Float, nan.Kind())
	assert.True(t, math.IsNaN(nan.Double()))

	for _, bad := range []string{"", "True", "1.2.3", "abc", " 1", "1e400", "0b101", "0x1p4", "-0X1P-2", "1_000.5", "1_0"} {
		_, err := number.Parse(bad)
		assert.ErrorIs(t, err, number.ErrSyntax, "%q", bad)
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []number.Number{number.Of(true), number.Of(-12), number.Of(float32(0.75)), number.Of(math.Inf(-1))} {
		text, err := n.MarshalText()
		require.NoError(t, err)

		var back number.Number
		require.NoError(t, back.UnmarshalText(text))
		// the Kind may change, the value may not
		assert.Equal(t, n.String(), back.String())
		assert.Equal(t, n.Double(), back.Double(), string(text))
	}

	var n number.Number
	assert.ErrorIs(t, n.UnmarshalText([]byte("nope")), number.ErrSyntax)
}
