// SPDX-License-Identifier: MIT

package floating

import (
	"fmt"

	"github.com/katalvlaran/lvnum/traits"
)

// Trunc rounds x toward zero by clearing the fractional bits of the
// significand. NaN, ±Inf and ±0 are returned unchanged; a value with
// magnitude below one becomes a zero of the same sign.
func Trunc[T traits.Float](x T) T {
	l := layoutOf[T]()
	b := toBits(x)
	_, exp, _ := l.fields(b)
	if exp == l.expMax() {
		return x
	}
	e := int(exp) - l.bias
	switch {
	case e < 0:
		return fromBits[T](b & l.signMask())
	case e >= int(l.mantBits):
		return x
	}
	frac := uint64(1)<<(l.mantBits-uint(e)) - 1

	return fromBits[T](b &^ frac)
}

// Floor rounds x toward negative infinity.
func Floor[T traits.Float](x T) T {
	t := Trunc(x)
	if x < 0 && t != x {
		return t - 1
	}

	return t
}

// Ceil rounds x toward positive infinity. Ceil(-0.5) is -0.
func Ceil[T traits.Float](x T) T {
	t := Trunc(x)
	if x > 0 && t != x {
		return t + 1
	}

	return t
}

// Fract returns x - Trunc(x), which carries the sign of x. It is ±0 for
// ±Inf and NaN for NaN, so Trunc(x)+Fract(x) == x for every non-NaN x.
func Fract[T traits.Float](x T) T {
	if IsInfinite(x) {
		l := layoutOf[T]()
		return fromBits[T](toBits(x) & l.signMask())
	}

	return x - Trunc(x)
}

// Rounded rounds x to the nearest integral value, breaking ties away from
// zero.
func Rounded[T traits.Float](x T) T {
	t := Trunc(x)
	switch f := x - t; {
	case f >= 0.5:
		return t + 1
	case f <= -0.5:
		return t - 1
	}

	return t
}

// Round replaces *x with Rounded(*x).
func Round[T traits.Float](x *T) { *x = Rounded(*x) }

// RoundedWith rounds x to an integral value using rule. NaN is returned
// unchanged under every rule. It panics with ErrUnknownRoundingRule for a rule
// outside the declared constants.
func RoundedWith[T traits.Float](x T, rule RoundingRule) T {
	if IsNaN(x) {
		return x
	}
	switch rule {
	case Up:
		return Ceil(x)
	case Down:
		return Floor(x)
	case TowardZero:
		return Trunc(x)
	case AwayFromZero:
		return awayFromZero(x)
	case ToNearestOrAwayFromZero:
		f := Fract(x)
		if Abs(f-0.5) < 0.1 || Abs(f+0.5) < 0.1 {
			return awayFromZero(x)
		}
		return Rounded(x)
	case ToNearestOrEven:
		return Rounded(x)
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownRoundingRule, int(rule)))
}

// RoundWith replaces *x with RoundedWith(*x, rule).
func RoundWith[T traits.Float](x *T, rule RoundingRule) { *x = RoundedWith(*x, rule) }

func awayFromZero[T traits.Float](x T) T {
	switch {
	case x > 0:
		return Ceil(x)
	case x < 0:
		return Floor(x)
	}

	return x
}
