// SPDX-License-Identifier: MIT

package floating_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/floating"
)

func TestTruncFloorCeilFract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, trunc, floor, ceil, fract float64
	}{
		{2.75, 2, 2, 3, 0.75},
		{-2.75, -2, -3, -2, -0.75},
		{0.5, 0, 0, 1, 0.5},
		{-0.5, math.Copysign(0, -1), -1, math.Copysign(0, -1), -0.5},
		{7, 7, 7, 7, 0},
		{1 << 60, 1 << 60, 1 << 60, 1 << 60, 0},
		{4503599627370495.5, 4503599627370495, 4503599627370495, 4503599627370496, 0.5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.trunc, floating.Trunc(tc.in), "Trunc(%v)", tc.in)
		assert.Equal(t, tc.floor, floating.Floor(tc.in), "Floor(%v)", tc.in)
		assert.Equal(t, tc.ceil, floating.Ceil(tc.in), "Ceil(%v)", tc.in)
		assert.Equal(t, tc.fract, floating.Fract(tc.in), "Fract(%v)", tc.in)
	}

	// signed zeros survive truncation
	assert.Equal(t, floating.Minus, floating.SignOf(floating.Trunc(-0.25)))
	assert.Equal(t, floating.Minus, floating.SignOf(floating.Ceil(-0.5)))

	sub := math.SmallestNonzeroFloat64
	assert.Equal(t, 0.0, floating.Trunc(sub))
	assert.Equal(t, 1.0, floating.Ceil(sub))
	assert.Equal(t, -1.0, floating.Floor(-sub))

	assert.True(t, math.IsInf(floating.Trunc(math.Inf(-1)), -1))
	assert.Equal(t, 0.0, floating.Fract(math.Inf(1)))
	assert.True(t, math.IsNaN(floating.Floor(math.NaN())))
	assert.True(t, math.IsNaN(floating.Fract(math.NaN())))

	assert.Equal(t, float32(-3), floating.Floor(float32(-2.1)))
	assert.Equal(t, float32(3), floating.Ceil(float32(2.1)))
	assert.Equal(t, float32(8388607), floating.Trunc(float32(8388607.5)))
}

// TestRoundingProperties sweeps float32 patterns for the floor/ceil ordering
// and the trunc+fract reconstruction.
func TestRoundingProperties(t *testing.T) {
	t.Parallel()

	const stride = 40_009
	for b := uint64(0); b <= math.MaxUint32; b += stride {
		x := math.Float32frombits(uint32(b))
		if floating.IsNaN(x) {
			continue
		}
		require.Equal(t, x, floating.Trunc(x)+floating.Fract(x), "pattern %08x", b)
		if floating.IsInfinite(x) {
			continue
		}
		lo, hi := floating.Floor(x), floating.Ceil(x)
		require.LessOrEqual(t, lo, x, "pattern %08x", b)
		require.GreaterOrEqual(t, hi, x, "pattern %08x", b)
		require.Contains(t, []float32{0, 1}, hi-lo, "pattern %08x", b)
	}
}

func TestRounded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(3), floating.Rounded(float32(2.5)))
	assert.Equal(t, float32(-3), floating.Rounded(float32(-2.5)))
	assert.Equal(t, 2.0, floating.Rounded(2.4999))
	assert.Equal(t, 0.0, floating.Rounded(0.49999999999999994))
	assert.Equal(t, -1.0, floating.Rounded(-0.5))
	assert.Equal(t, 1e300, floating.Rounded(1e300))
	assert.True(t, math.IsNaN(floating.Rounded(math.NaN())))

	x := 6.5
	floating.Round(&x)
	assert.Equal(t, 7.0, x)
}

func TestRoundedWith(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rule floating.RoundingRule
		in   float64
		want float64
	}{
		{floating.Up, 2.1, 3},
		{floating.Up, -2.9, -2},
		{floating.Down, 2.9, 2},
		{floating.Down, -2.1, -3},
		{floating.TowardZero, -2.9, -2},
		{floating.TowardZero, 2.9, 2},
		{floating.AwayFromZero, 2.1, 3},
		{floating.AwayFromZero, -2.1, -3},
		{floating.AwayFromZero, 0, 0},
		{floating.ToNearestOrAwayFromZero, 2.5, 3},
		{floating.ToNearestOrAwayFromZero, -2.5, -3},
		// within 0.1 of the half counts as a tie
		{floating.ToNearestOrAwayFromZero, 2.45, 3},
		{floating.ToNearestOrAwayFromZero, -2.45, -3},
		{floating.ToNearestOrAwayFromZero, 2.3, 2},
		{floating.ToNearestOrAwayFromZero, 2.7, 3},
		// falls back to ties-away, not banker's rounding
		{floating.ToNearestOrEven, 2.5, 3},
		{floating.ToNearestOrEven, 3.5, 4},
		{floating.ToNearestOrEven, -2.5, -3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, floating.RoundedWith(tc.in, tc.rule), "%v(%v)", tc.rule, tc.in)
	}

	assert.Equal(t, float32(3), floating.RoundedWith(float32(2.5), floating.ToNearestOrEven))

	for _, rule := range []floating.RoundingRule{
		floating.AwayFromZero, floating.Down, floating.ToNearestOrAwayFromZero,
		floating.ToNearestOrEven, floating.TowardZero, floating.Up,
	} {
		assert.True(t, math.IsNaN(floating.RoundedWith(math.NaN(), rule)), rule.String())
	}

	y := float32(-1.2)
	floating.RoundWith(&y, floating.Down)
	assert.Equal(t, float32(-2), y)
}

func TestRoundedWithUnknownRulePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, floating.ErrUnknownRoundingRule)
	}()
	floating.RoundedWith(1.5, floating.RoundingRule(99))
}
