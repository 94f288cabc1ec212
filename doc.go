// Package lvnum is a set of numeric capability contracts and their
// implementations for Go's built-in integers and floats, plus 128-bit
// integers and a tagged scalar.
//
// 🚀 What is lvnum?
//
//	A small, dependency-light library that brings together:
//		• Capability contracts: AdditiveArithmetic, Numeric, BinaryInteger, FixedWidthInteger
//		• Overflow-reporting arithmetic: (wrapped result, overflow flag), never a surprise fault
//		• Bit facts & byte order: widths, leading/trailing/nonzero bit counts, byte swaps
//		• IEEE-754 from first principles: classification, rounding rules, next up/down, ulp
//		• Newton square root with tunable tolerance (functional options)
//		• 128-bit integers: Uint128 and Int128 with the same surface as int64/uint64
//		• Number: one value of eleven primitive kinds with cast-style conversions
//
// ✨ Why choose lvnum?
//
//   - One generic implementation per capability, not one per type
//   - Explicit edge cases: division by zero, MIN / -1, ±0, NaN, subnormals
//   - Pure functions over values; safe for concurrent use
//
// Everything is organized under five subpackages:
//
//	traits/   type sets, method contracts, Zero/One/Negate, generic Sum
//	integer/  generic integer operations and the Int/Uint contract adapters
//	floating/ FloatingPoint operations for float32 and float64
//	wide/     Uint128 and Int128
//	number/   the Number tagged scalar and its parser
//
// Quick example:
//
//	sum, overflow := integer.AddingReportingOverflow(uint8(255), 1) // 0, true
//	r := floating.RoundedWith(2.5, floating.TowardZero)             // 2
//
//	go get github.com/katalvlaran/lvnum
package lvnum
