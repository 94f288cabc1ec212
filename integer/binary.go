// SPDX-License-Identifier: MIT

package integer

import (
	"math/bits"
	"unsafe"

	"github.com/katalvlaran/lvnum/traits"
)

// IsSigned reports whether T can represent negative values.
func IsSigned[T traits.Integer]() bool {
	var zero T

	return zero-1 < zero
}

// BitWidth returns the number of bits in T's representation. The result
// depends only on the type, never on a value.
func BitWidth[T traits.Integer]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// Max returns the greatest value representable by T.
func Max[T traits.Integer]() T {
	if IsSigned[T]() {
		return ^Min[T]()
	}
	var zero T

	return ^zero
}

// Min returns the least value representable by T.
func Min[T traits.Integer]() T {
	var zero T
	if !IsSigned[T]() {
		return zero
	}
	var one T = 1

	// Shifting into the sign bit wraps to the most negative value.
	return one << (BitWidth[T]() - 1)
}

// QuotientAndRemainder returns (a / b, a % b).
//
// A zero divisor panics with Go's runtime divide fault, exactly as the /
// operator would. Use DividedReportingOverflow for the non-faulting form.
func QuotientAndRemainder[T traits.Integer](a, b T) (quotient, remainder T) {
	return a / b, a % b
}

// IsMultipleOf reports whether a is evenly divisible by b.
// A zero divisor is defined to report false rather than fault.
func IsMultipleOf[T traits.Integer](a, b T) bool {
	if b == 0 {
		return false
	}

	return a%b == 0
}

// Signum returns -1, 0 or 1 for signed types and 0 or 1 for unsigned ones.
func Signum[T traits.Integer](a T) T {
	var zero T
	switch {
	case a < zero:
		return zero - 1
	case a > zero:
		return 1
	default:
		return zero
	}
}

// TrailingZeroBitCount counts the low-order zero bits of a. Signed values are
// measured on the unsigned pattern of their absolute value. Zero yields the
// bit width.
func TrailingZeroBitCount[T traits.Integer](a T) int {
	if a == 0 {
		return BitWidth[T]()
	}

	return bits.TrailingZeros64(magnitude(a))
}

// LeadingZeroBitCount counts the high-order zero bits of a's own pattern
// within the type's width. Negative values have none.
func LeadingZeroBitCount[T traits.Integer](a T) int {
	w := BitWidth[T]()

	return bits.LeadingZeros64(pattern(a)) - (64 - w)
}

// NonzeroBitCount counts the bits set to one in a's pattern.
func NonzeroBitCount[T traits.Integer](a T) int {
	return bits.OnesCount64(pattern(a))
}

// pattern returns a's two's-complement bit pattern zero-extended to 64 bits.
func pattern[T traits.Integer](a T) uint64 {
	w := BitWidth[T]()

	return uint64(a) & (^uint64(0) >> (64 - w))
}

// magnitude returns |a| as an unsigned 64-bit value. The most negative value
// maps to its true magnitude, 2^(w-1).
func magnitude[T traits.Integer](a T) uint64 {
	u := uint64(a)
	if a < 0 {
		u = -u
	}

	return u
}
