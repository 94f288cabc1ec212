// SPDX-License-Identifier: MIT

package floating

import "github.com/katalvlaran/lvnum/traits"

// IsNaN reports whether x is any NaN, quiet or signaling.
func IsNaN[T traits.Float](x T) bool {
	l := layoutOf[T]()
	_, exp, mant := l.fields(toBits(x))

	return exp == l.expMax() && mant != 0
}

// IsSignalingNaN reports whether x is a NaN with the quiet bit clear.
func IsSignalingNaN[T traits.Float](x T) bool {
	l := layoutOf[T]()
	_, exp, mant := l.fields(toBits(x))

	return exp == l.expMax() && mant != 0 && mant&l.quietBit() == 0
}

// IsInfinite reports whether x is +Inf or -Inf.
func IsInfinite[T traits.Float](x T) bool {
	l := layoutOf[T]()
	_, exp, mant := l.fields(toBits(x))

	return exp == l.expMax() && mant == 0
}

// IsZero reports whether x is +0 or -0.
func IsZero[T traits.Float](x T) bool {
	l := layoutOf[T]()

	return toBits(x)&^l.signMask() == 0
}

// IsNormal reports whether x has a biased exponent strictly between the
// reserved all-zeros and all-ones patterns.
func IsNormal[T traits.Float](x T) bool {
	l := layoutOf[T]()
	_, exp, _ := l.fields(toBits(x))

	return exp != 0 && exp != l.expMax()
}

// IsSubnormal reports whether x is nonzero with the minimum exponent field.
func IsSubnormal[T traits.Float](x T) bool {
	l := layoutOf[T]()
	_, exp, mant := l.fields(toBits(x))

	return exp == 0 && mant != 0
}

// IsFinite reports whether x is normal or zero. Subnormal values are not
// finite under this definition.
func IsFinite[T traits.Float](x T) bool {
	return IsNormal(x) || IsZero(x)
}

// IsCanonical reports whether x is not a NaN.
func IsCanonical[T traits.Float](x T) bool {
	return !IsNaN(x)
}

// SignOf reads the sign bit. -0 and negative NaNs report Minus.
func SignOf[T traits.Float](x T) Sign {
	l := layoutOf[T]()
	if toBits(x)&l.signMask() != 0 {
		return Minus
	}

	return Plus
}

// Classify returns the single IEEE-754 class of x, checking NaN first, then
// infinity, zero, normal and finally subnormal.
func Classify[T traits.Float](x T) Classification {
	l := layoutOf[T]()
	neg, exp, mant := l.fields(toBits(x))

	var class Classification
	switch {
	case exp == l.expMax() && mant != 0:
		if mant&l.quietBit() == 0 {
			return SignalingNaN
		}
		return QuietNaN
	case exp == l.expMax():
		class = PositiveInfinity
	case exp == 0 && mant == 0:
		class = PositiveZero
	case exp != 0:
		class = PositiveNormal
	default:
		class = PositiveSubnormal
	}
	if neg {
		// Negative* mirrors Positive* at a fixed offset.
		class -= PositiveInfinity - NegativeInfinity
	}

	return class
}
