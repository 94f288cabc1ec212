// SPDX-License-Identifier: MIT

package floating

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/lvnum/traits"
)

// Remainder returns x - Rounded(x/y)*y. The result may be negative even when
// both operands are positive; Remainder(8.625, 0.75) is -0.375.
func Remainder[T traits.Float](x, y T) T {
	return x - Rounded(x/y)*y
}

// FormRemainder replaces *x with Remainder(*x, y).
func FormRemainder[T traits.Float](x *T, y T) { *x = Remainder(*x, y) }

// TruncatingRemainder returns x - Trunc(x/y)*y, which carries the sign of x.
func TruncatingRemainder[T traits.Float](x, y T) T {
	return x - Trunc(x/y)*y
}

// FormTruncatingRemainder replaces *x with TruncatingRemainder(*x, y).
func FormTruncatingRemainder[T traits.Float](x *T, y T) { *x = TruncatingRemainder(*x, y) }

// AddingProduct returns x + a*b with a single rounding. float32 operands are
// fused in float64, where their product is exact; the float64 sum is rounded
// to odd so the final narrowing to float32 rounds once.
func AddingProduct[T traits.Float](x, a, b T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(fusedFloat32(float64(x), float64(a)*float64(b)))
	}

	return T(math.FMA(float64(a), float64(b), float64(x)))
}

// fusedFloat32 returns x + p rounded to odd in float64. x and p are exact, and
// 53 bits leave the two guard bits the float32 rounding needs.
func fusedFloat32(x, p float64) float64 {
	s := x + p
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return s
	}
	// Knuth's two-sum: s + e == x + p exactly.
	v := s - x
	e := (x - (s - v)) + (p - v)
	if e == 0 || math.Float64bits(s)&1 != 0 {
		return s
	}

	return math.Nextafter(s, math.Copysign(math.Inf(1), e))
}

// AddProduct replaces *x with AddingProduct(*x, a, b).
func AddProduct[T traits.Float](x *T, a, b T) { *x = AddingProduct(*x, a, b) }

// IsEqualTo is IEEE equality: NaN equals nothing and -0 equals +0.
func IsEqualTo[T traits.Float](x, y T) bool { return x == y }

// IsLessThan is the IEEE less-than predicate; false whenever either operand is NaN.
func IsLessThan[T traits.Float](x, y T) bool { return x < y }

// IsLessThanOrEqualTo is the IEEE less-or-equal predicate.
func IsLessThanOrEqualTo[T traits.Float](x, y T) bool { return x <= y }

// IsTotallyOrderedBelowOrEqualTo implements the IEEE-754 totalOrder predicate:
// -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN, with NaNs ordered by payload.
func IsTotallyOrderedBelowOrEqualTo[T traits.Float](x, y T) bool {
	l := layoutOf[T]()

	return totalKey(l, toBits(x)) <= totalKey(l, toBits(y))
}

// totalKey maps a pattern onto an unsigned key that sorts in totalOrder.
func totalKey(l layout, b uint64) uint64 {
	if b&l.signMask() != 0 {
		return ^b & l.fullMask()
	}

	return b | l.signMask()
}

// Maximum returns the greater of x and y. A NaN operand yields the other
// operand; two NaNs yield x. Maximum(-0, +0) is +0.
func Maximum[T traits.Float](x, y T) T {
	switch {
	case IsNaN(x):
		return y
	case IsNaN(y), x > y:
		return x
	case y > x:
		return y
	case SignOf(x) == Minus:
		return y
	}

	return x
}

// Minimum returns the lesser of x and y with the same NaN rules as Maximum.
// Minimum(+0, -0) is -0.
func Minimum[T traits.Float](x, y T) T {
	switch {
	case IsNaN(x):
		return y
	case IsNaN(y), x < y:
		return x
	case y < x:
		return y
	case SignOf(x) == Plus:
		return y
	}

	return x
}

// MaximumMagnitude returns the operand with the greater magnitude, deferring
// to Maximum on a tie or a NaN.
func MaximumMagnitude[T traits.Float](x, y T) T {
	ax, ay := Abs(x), Abs(y)
	switch {
	case ax > ay:
		return x
	case ay > ax:
		return y
	}

	return Maximum(x, y)
}

// MinimumMagnitude returns the operand with the lesser magnitude, deferring
// to Minimum on a tie or a NaN.
func MinimumMagnitude[T traits.Float](x, y T) T {
	ax, ay := Abs(x), Abs(y)
	switch {
	case ax < ay:
		return x
	case ay < ax:
		return y
	}

	return Minimum(x, y)
}
