// SPDX-License-Identifier: MIT

package traits

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var zero T

	return zero
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// Negated returns -x.
//
// Negating the minimum value of a signed integer type panics with
// ErrNegationOverflow instead of silently wrapping back to the same value.
// Floating-point values only flip their sign bit, so -0.0 and NaN are fine.
func Negated[T SignedNumber](x T) T {
	neg := -x
	// Only the minimum signed integer stays negative after negation.
	if x < 0 && neg < 0 {
		panic(ErrNegationOverflow)
	}

	return neg
}

// Negate replaces *x with its negation. See Negated for the fault condition.
func Negate[T SignedNumber](x *T) {
	*x = Negated(*x)
}
