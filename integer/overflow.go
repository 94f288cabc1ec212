// SPDX-License-Identifier: MIT

package integer

import "github.com/katalvlaran/lvnum/traits"

// AddingReportingOverflow returns a + b wrapped to T's width and whether the
// exact sum was out of range.
func AddingReportingOverflow[T traits.Integer](a, b T) (T, bool) {
	r := a + b
	if IsSigned[T]() {
		// Overflow iff both operands share a sign the result does not.
		return r, (a >= 0) == (b >= 0) && (r >= 0) != (a >= 0)
	}

	return r, r < a
}

// SubtractingReportingOverflow returns a - b wrapped to T's width and whether
// the exact difference was out of range.
func SubtractingReportingOverflow[T traits.Integer](a, b T) (T, bool) {
	r := a - b
	if IsSigned[T]() {
		return r, (a >= 0) != (b >= 0) && (r >= 0) != (a >= 0)
	}

	return r, b > a
}

// MultipliedReportingOverflow returns a * b wrapped to T's width and whether
// the exact product was out of range.
func MultipliedReportingOverflow[T traits.Integer](a, b T) (T, bool) {
	r := a * b
	if a == 0 || b == 0 {
		return r, false
	}
	if IsSigned[T]() {
		var zero T
		minusOne, lowest := zero-1, Min[T]()
		// Min * -1 wraps to Min and survives the division check below.
		if (a == minusOne && b == lowest) || (b == minusOne && a == lowest) {
			return r, true
		}
	}

	return r, r/b != a
}

// DividedReportingOverflow returns a / b and whether the division overflowed.
// A zero divisor reports (0, true); Min / -1 reports (Min, true).
func DividedReportingOverflow[T traits.Integer](a, b T) (T, bool) {
	var zero T
	if b == 0 {
		return zero, true
	}
	if IsSigned[T]() && b == zero-1 && a == Min[T]() {
		return a, true
	}

	return a / b, false
}

// RemainderReportingOverflow returns a % b and whether the operation
// overflowed. A zero divisor reports (0, true); Min % -1 reports (0, true).
func RemainderReportingOverflow[T traits.Integer](a, b T) (T, bool) {
	var zero T
	if b == 0 {
		return zero, true
	}
	if IsSigned[T]() && b == zero-1 && a == Min[T]() {
		return zero, true
	}

	return a % b, false
}
