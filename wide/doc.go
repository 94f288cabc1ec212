// SPDX-License-Identifier: MIT

// Package wide provides 128-bit integers that carry the same capability
// surface as the built-in fixed-width integers.
//
// Uint128 stores its value in a lukechampine.com/uint128 word pair; Int128 is
// the two's complement reading of the same 128 bits. Both satisfy
// traits.FixedWidthInteger, and Int128 also satisfies traits.SignedNumeric:
//
//	a := wide.Uint128From64(math.MaxUint64)
//	b, overflow := a.MultipliedReportingOverflow(a) // fits, overflow == false
//	_, overflow = wide.MaxUint128().AddingReportingOverflow(wide.Uint128From64(1))
//
// Arithmetic follows Go's integer operators: Add, Sub and Mul wrap, Quo and Rem
// panic with the runtime divide fault on a zero divisor, and the
// *ReportingOverflow forms turn every fault into an overflow flag.
//
// Values are immutable and safe to share between goroutines.
package wide
