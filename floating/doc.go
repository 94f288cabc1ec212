// SPDX-License-Identifier: MIT

// Package floating implements the FloatingPoint capability for float32 and
// float64, written once with generics over the IEEE-754 bit layout.
//
// Everything is derived from the bit pattern instead of a platform math
// library: classification, truncation and rounding, adjacent-value stepping,
// the unit in the last place, exponent/significand decomposition and the
// Newton square root.
//
// Library decisions that differ from a textbook IEEE-754 reading, kept on
// purpose and covered by tests:
//
//   - IsFinite is IsNormal || IsZero, so subnormal values are NOT finite here.
//   - NextUp and NextDown return ±0 unchanged instead of stepping to the least
//     subnormal.
//   - RoundedWith(x, ToNearestOrEven) falls back to Rounded, which breaks ties
//     away from zero; 2.5 rounds to 3, not 2.
//   - RoundedWith(x, ToNearestOrAwayFromZero) treats any fractional part within
//     0.1 of ±0.5 as a tie.
//
// Square root convergence is configurable with functional options:
//
//	r := floating.SquareRoot(2.0)                                    // 4 ulps
//	r = floating.SquareRoot(2.0, floating.WithAbsoluteTolerance(1e-6))
//	r, err := floating.SquareRootChecked(-1.0)                       // NaN, ErrNegativeRadicand
//
// All functions are pure and safe for concurrent use.
package floating
