// SPDX-License-Identifier: MIT

package floating

import "github.com/katalvlaran/lvnum/traits"

// NextUp returns the least representable value that compares greater than x.
// NaN, ±Inf and ±0 are returned unchanged; the greatest finite magnitude steps
// to +Inf.
func NextUp[T traits.Float](x T) T {
	if IsNaN(x) || IsInfinite(x) || IsZero(x) {
		return x
	}
	if x < 0 {
		return fromBits[T](toBits(x) - 1)
	}

	return fromBits[T](toBits(x) + 1)
}

// NextDown returns the greatest representable value that compares less than
// x, with the same exceptions as NextUp.
func NextDown[T traits.Float](x T) T {
	if IsNaN(x) || IsInfinite(x) || IsZero(x) {
		return x
	}
	if x < 0 {
		return fromBits[T](toBits(x) + 1)
	}

	return fromBits[T](toBits(x) - 1)
}

// Ulp returns the unit in the last place of x: the distance from |x| to the
// next larger magnitude, or to the previous one at the greatest finite
// magnitude. Ulp(±0) is LeastNonzeroMagnitude, Ulp(±Inf) is +Inf and NaN is
// returned unchanged.
func Ulp[T traits.Float](x T) T {
	switch {
	case IsNaN(x):
		return x
	case IsInfinite(x):
		return Infinity[T]()
	case IsZero(x):
		return LeastNonzeroMagnitude[T]()
	}
	m := Abs(x)
	if m == GreatestFiniteMagnitude[T]() {
		return m - NextDown(m)
	}

	return NextUp(m) - m
}
