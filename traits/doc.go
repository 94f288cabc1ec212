// SPDX-License-Identifier: MIT

// Package traits defines the numeric capability contracts shared by the rest
// of lvnum.
//
// A capability is a small, independent contract a concrete numeric type may or
// may not provide. Contracts come in two shapes:
//
//   - Type sets (Signed, Unsigned, Integer, Float, Number, SignedNumber) constrain
//     generic functions over Go's built-in numbers. They are thin wrappers over
//     golang.org/x/exp/constraints so the whole module agrees on one vocabulary.
//
//   - Method contracts (AdditiveArithmetic, Numeric, SignedNumeric, Divisible,
//     BitCounting, ByteOrdered, Overflowing, BinaryInteger, FixedWidthInteger)
//     describe value types that carry their operations as methods, such as
//     wide.Int128, wide.Uint128 and the integer.Int / integer.Uint adapters.
//
// The lattice
//
//	AdditiveArithmetic ⊂ Numeric ⊂ {SignedNumeric, BinaryInteger} ⊂ FixedWidthInteger
//
// is expressed by interface embedding, but every layer is also usable on its
// own: a generic function asks only for the capabilities it needs.
//
// Identity convention:
//
//	The zero value of every method-contract implementer is its additive
//	identity. Generic algorithms (Sum, SumReportingOverflow) rely on it.
//
// Faults vs signals:
//
//	Negate on the minimum signed value panics with ErrNegationOverflow; that is
//	the arithmetic-fault channel. Overflowing operations return a boolean
//	instead and never panic.
package traits
