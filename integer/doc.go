// SPDX-License-Identifier: MIT

// Package integer implements the BinaryInteger and FixedWidthInteger
// capabilities for every built-in Go integer type, written once with generics
// and parameterized by the type's bit width and signedness.
//
// Two error channels, never conflated:
//
//   - Arithmetic fault: QuotientAndRemainder divides with Go's / and % and
//     therefore panics with the runtime divide-by-zero error. It is not
//     recovered.
//   - Overflow signal: every *ReportingOverflow function returns the wrapped
//     result plus a boolean. Division and remainder by zero are folded into that
//     boolean with a zero result, so callers can test one flag.
//
// Free functions cover the built-in values directly:
//
//	q, r := integer.QuotientAndRemainder(int32(10), 3) // 3, 1
//	sum, o := integer.AddingReportingOverflow(uint8(255), 1) // 0, true
//
// Int[T] and Uint[T] attach the same operations as methods so built-in values
// satisfy the traits contracts alongside wide.Int128 and wide.Uint128:
//
//	total := traits.Sum(integer.Int[int16]{V: 2}, integer.Int[int16]{V: 3})
package integer
