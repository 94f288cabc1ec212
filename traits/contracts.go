// SPDX-License-Identifier: MIT

package traits

// AdditiveArithmetic is implemented by values that support addition and
// subtraction. The zero value of T is the additive identity.
type AdditiveArithmetic[T any] interface {
	Add(rhs T) T
	Sub(rhs T) T
}

// Numeric adds multiplication to AdditiveArithmetic.
type Numeric[T any] interface {
	AdditiveArithmetic[T]
	Mul(rhs T) T
}

// SignedNumeric is a Numeric value with a negation.
type SignedNumeric[T any] interface {
	Numeric[T]
	Neg() T
}

// Divisible groups the integer division capabilities.
//
// Quo, Rem and QuotientAndRemainder fault (panic) on a zero divisor exactly like
// Go's built-in operators. IsMultipleOf is defined for a zero divisor and
// reports false.
type Divisible[T any] interface {
	Quo(rhs T) T
	Rem(rhs T) T
	QuotientAndRemainder(rhs T) (T, T)
	IsMultipleOf(other T) bool
}

// BitCounting reports bit-level facts about a fixed-width value.
type BitCounting interface {
	BitWidth() int
	TrailingZeroBitCount() int
	LeadingZeroBitCount() int
	NonzeroBitCount() int
}

// ByteOrdered exposes byte-layout transforms. They have no arithmetic meaning.
type ByteOrdered[T any] interface {
	BigEndian() T
	LittleEndian() T
	ByteSwapped() T
}

// Overflowing groups the overflow-reporting operations. Each returns the
// wrapped result and whether the exact result did not fit. Division and
// remainder by zero report (0, true) instead of faulting.
type Overflowing[T any] interface {
	AddingReportingOverflow(rhs T) (T, bool)
	SubtractingReportingOverflow(rhs T) (T, bool)
	MultipliedReportingOverflow(rhs T) (T, bool)
	DividedReportingOverflow(rhs T) (T, bool)
	RemainderReportingOverflow(rhs T) (T, bool)
}

// BinaryInteger is an integer with division, sign and bit-width facts.
type BinaryInteger[T any] interface {
	Numeric[T]
	Divisible[T]
	Signum() T
	IsSigned() bool
	BitWidth() int
	TrailingZeroBitCount() int
}

// FixedWidthInteger is a BinaryInteger of a fixed bit width with overflow
// reporting and byte-order transforms.
type FixedWidthInteger[T any] interface {
	BinaryInteger[T]
	BitCounting
	ByteOrdered[T]
	Overflowing[T]
}
