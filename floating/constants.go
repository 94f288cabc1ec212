// SPDX-License-Identifier: MIT

package floating

import (
	"math"

	"github.com/katalvlaran/lvnum/traits"
)

// Radix is the base of every supported format.
const Radix = 2

// GreatestFiniteMagnitude returns the largest finite value of T.
func GreatestFiniteMagnitude[T traits.Float]() T {
	l := layoutOf[T]()

	return fromBits[T]((l.expMax()-1)<<l.mantBits | l.mantMask())
}

// Infinity returns +Inf.
func Infinity[T traits.Float]() T {
	return fromBits[T](layoutOf[T]().expMask())
}

// LeastNonzeroMagnitude returns the smallest positive subnormal.
func LeastNonzeroMagnitude[T traits.Float]() T {
	return fromBits[T](1)
}

// LeastNormalMagnitude returns the smallest positive normal value.
func LeastNormalMagnitude[T traits.Float]() T {
	return fromBits[T](1 << layoutOf[T]().mantBits)
}

// NaN returns the canonical positive quiet NaN.
func NaN[T traits.Float]() T {
	l := layoutOf[T]()

	return fromBits[T](l.expMask() | l.quietBit())
}

// SignalingNaNValue returns a positive NaN with the quiet bit clear.
//
// The pattern survives Go's float32/float64 moves unchanged, but any arithmetic
// on it may quiet it.
func SignalingNaNValue[T traits.Float]() T {
	l := layoutOf[T]()

	return fromBits[T](l.expMask() | l.quietBit()>>1)
}

// Pi returns π rounded to T.
func Pi[T traits.Float]() T { return T(math.Pi) }

// UlpOfOne returns the gap between 1 and the next representable value, 2^-p
// where p is the number of explicit significand bits.
func UlpOfOne[T traits.Float]() T {
	l := layoutOf[T]()

	return fromBits[T](uint64(l.bias-int(l.mantBits)) << l.mantBits)
}
