// SPDX-License-Identifier: MIT

package integer

import (
	"strconv"

	"github.com/katalvlaran/lvnum/traits"
)

// Int attaches the integer capabilities to a built-in signed value so it
// satisfies traits.FixedWidthInteger and traits.SignedNumeric.
//
// Add, Sub and Mul wrap on overflow like Go's operators; Neg panics with
// traits.ErrNegationOverflow on the minimum value.
type Int[T traits.Signed] struct {
	V T
}

// Uint attaches the integer capabilities to a built-in unsigned value so it
// satisfies traits.FixedWidthInteger. Unsigned values have no negation.
type Uint[T traits.Unsigned] struct {
	V T
}

var (
	_ traits.FixedWidthInteger[Int[int8]]     = Int[int8]{}
	_ traits.SignedNumeric[Int[int64]]        = Int[int64]{}
	_ traits.FixedWidthInteger[Uint[uint8]]   = Uint[uint8]{}
	_ traits.FixedWidthInteger[Uint[uintptr]] = Uint[uintptr]{}
)

// Add returns x + rhs, wrapping on overflow.
func (x Int[T]) Add(rhs Int[T]) Int[T] { return Int[T]{x.V + rhs.V} }

// Sub returns x - rhs, wrapping on overflow.
func (x Int[T]) Sub(rhs Int[T]) Int[T] { return Int[T]{x.V - rhs.V} }

// Mul returns x * rhs, wrapping on overflow.
func (x Int[T]) Mul(rhs Int[T]) Int[T] { return Int[T]{x.V * rhs.V} }

// Neg returns -x and panics with traits.ErrNegationOverflow on the minimum value.
func (x Int[T]) Neg() Int[T] { return Int[T]{traits.Negated(x.V)} }

// Quo returns x / rhs truncated toward zero. It panics when rhs is zero.
func (x Int[T]) Quo(rhs Int[T]) Int[T] { return Int[T]{x.V / rhs.V} }

// Rem returns x % rhs with the sign of x. It panics when rhs is zero.
func (x Int[T]) Rem(rhs Int[T]) Int[T] { return Int[T]{x.V % rhs.V} }

// QuotientAndRemainder panics on a zero divisor; see the package function.
func (x Int[T]) QuotientAndRemainder(rhs Int[T]) (Int[T], Int[T]) {
	q, r := QuotientAndRemainder(x.V, rhs.V)

	return Int[T]{q}, Int[T]{r}
}

// IsMultipleOf reports whether other divides x; false for a zero divisor.
func (x Int[T]) IsMultipleOf(other Int[T]) bool { return IsMultipleOf(x.V, other.V) }

// Signum returns -1, 0 or +1 by the sign of x.
func (x Int[T]) Signum() Int[T] { return Int[T]{Signum(x.V)} }

// IsSigned reports whether the type is signed.
func (Int[T]) IsSigned() bool { return true }

// BitWidth returns the width of the type in bits.
func (Int[T]) BitWidth() int { return BitWidth[T]() }

// TrailingZeroBitCount counts zero bits below the lowest set bit; all bits for zero.
func (x Int[T]) TrailingZeroBitCount() int { return TrailingZeroBitCount(x.V) }

// LeadingZeroBitCount counts zero bits above the highest set bit.
func (x Int[T]) LeadingZeroBitCount() int { return LeadingZeroBitCount(x.V) }

// NonzeroBitCount counts the set bits.
func (x Int[T]) NonzeroBitCount() int { return NonzeroBitCount(x.V) }

// BigEndian converts x between host and big-endian byte order.
func (x Int[T]) BigEndian() Int[T] { return Int[T]{BigEndian(x.V)} }

// LittleEndian converts x between host and little-endian byte order.
func (x Int[T]) LittleEndian() Int[T] { return Int[T]{LittleEndian(x.V)} }

// ByteSwapped reverses the byte order of x.
func (x Int[T]) ByteSwapped() Int[T] { return Int[T]{ByteSwapped(x.V)} }

// AddingReportingOverflow returns the wrapped sum and whether it overflowed.
func (x Int[T]) AddingReportingOverflow(rhs Int[T]) (Int[T], bool) {
	r, o := AddingReportingOverflow(x.V, rhs.V)

	return Int[T]{r}, o
}

// SubtractingReportingOverflow returns the wrapped difference and whether it overflowed.
func (x Int[T]) SubtractingReportingOverflow(rhs Int[T]) (Int[T], bool) {
	r, o := SubtractingReportingOverflow(x.V, rhs.V)

	return Int[T]{r}, o
}

// MultipliedReportingOverflow returns the wrapped product and whether it overflowed.
func (x Int[T]) MultipliedReportingOverflow(rhs Int[T]) (Int[T], bool) {
	r, o := MultipliedReportingOverflow(x.V, rhs.V)

	return Int[T]{r}, o
}

// DividedReportingOverflow returns (0, true) for a zero divisor and (x, true) for MIN / -1.
func (x Int[T]) DividedReportingOverflow(rhs Int[T]) (Int[T], bool) {
	r, o := DividedReportingOverflow(x.V, rhs.V)

	return Int[T]{r}, o
}

// RemainderReportingOverflow returns (0, true) for a zero divisor and for MIN % -1.
func (x Int[T]) RemainderReportingOverflow(rhs Int[T]) (Int[T], bool) {
	r, o := RemainderReportingOverflow(x.V, rhs.V)

	return Int[T]{r}, o
}

// String formats x in base 10.
func (x Int[T]) String() string { return strconv.FormatInt(int64(x.V), 10) }

// Add returns x + rhs, wrapping on overflow.
func (x Uint[T]) Add(rhs Uint[T]) Uint[T] { return Uint[T]{x.V + rhs.V} }

// Sub returns x - rhs, wrapping on overflow.
func (x Uint[T]) Sub(rhs Uint[T]) Uint[T] { return Uint[T]{x.V - rhs.V} }

// Mul returns x * rhs, wrapping on overflow.
func (x Uint[T]) Mul(rhs Uint[T]) Uint[T] { return Uint[T]{x.V * rhs.V} }

// Quo returns x / rhs. It panics when rhs is zero.
func (x Uint[T]) Quo(rhs Uint[T]) Uint[T] { return Uint[T]{x.V / rhs.V} }

// Rem returns x % rhs. It panics when rhs is zero.
func (x Uint[T]) Rem(rhs Uint[T]) Uint[T] { return Uint[T]{x.V % rhs.V} }

// QuotientAndRemainder panics on a zero divisor; see the package function.
func (x Uint[T]) QuotientAndRemainder(rhs Uint[T]) (Uint[T], Uint[T]) {
	q, r := QuotientAndRemainder(x.V, rhs.V)

	return Uint[T]{q}, Uint[T]{r}
}

// IsMultipleOf reports whether other divides x; false for a zero divisor.
func (x Uint[T]) IsMultipleOf(other Uint[T]) bool { return IsMultipleOf(x.V, other.V) }

// Signum returns 0 for zero and 1 otherwise.
func (x Uint[T]) Signum() Uint[T] { return Uint[T]{Signum(x.V)} }

// IsSigned reports whether the type is signed.
func (Uint[T]) IsSigned() bool { return false }

// BitWidth returns the width of the type in bits.
func (Uint[T]) BitWidth() int { return BitWidth[T]() }

// TrailingZeroBitCount counts zero bits below the lowest set bit; all bits for zero.
func (x Uint[T]) TrailingZeroBitCount() int { return TrailingZeroBitCount(x.V) }

// LeadingZeroBitCount counts zero bits above the highest set bit.
func (x Uint[T]) LeadingZeroBitCount() int { return LeadingZeroBitCount(x.V) }

// NonzeroBitCount counts the set bits.
func (x Uint[T]) NonzeroBitCount() int { return NonzeroBitCount(x.V) }

// BigEndian converts x between host and big-endian byte order.
func (x Uint[T]) BigEndian() Uint[T] { return Uint[T]{BigEndian(x.V)} }

// LittleEndian converts x between host and little-endian byte order.
func (x Uint[T]) LittleEndian() Uint[T] { return Uint[T]{LittleEndian(x.V)} }

// ByteSwapped reverses the byte order of x.
func (x Uint[T]) ByteSwapped() Uint[T] { return Uint[T]{ByteSwapped(x.V)} }

// AddingReportingOverflow returns the wrapped sum and whether it overflowed.
func (x Uint[T]) AddingReportingOverflow(rhs Uint[T]) (Uint[T], bool) {
	r, o := AddingReportingOverflow(x.V, rhs.V)

	return Uint[T]{r}, o
}

// SubtractingReportingOverflow returns the wrapped difference and whether it overflowed.
func (x Uint[T]) SubtractingReportingOverflow(rhs Uint[T]) (Uint[T], bool) {
	r, o := SubtractingReportingOverflow(x.V, rhs.V)

	return Uint[T]{r}, o
}

// MultipliedReportingOverflow returns the wrapped product and whether it overflowed.
func (x Uint[T]) MultipliedReportingOverflow(rhs Uint[T]) (Uint[T], bool) {
	r, o := MultipliedReportingOverflow(x.V, rhs.V)

	return Uint[T]{r}, o
}

// DividedReportingOverflow returns (0, true) for a zero divisor.
func (x Uint[T]) DividedReportingOverflow(rhs Uint[T]) (Uint[T], bool) {
	r, o := DividedReportingOverflow(x.V, rhs.V)

	return Uint[T]{r}, o
}

// RemainderReportingOverflow returns (0, true) for a zero divisor.
func (x Uint[T]) RemainderReportingOverflow(rhs Uint[T]) (Uint[T], bool) {
	r, o := RemainderReportingOverflow(x.V, rhs.V)

	return Uint[T]{r}, o
}

// String formats x in base 10.
func (x Uint[T]) String() string { return strconv.FormatUint(uint64(x.V), 10) }
