// SPDX-License-Identifier: MIT

// Package number provides Number, a tagged scalar that holds exactly one of
// eleven primitive kinds and converts to any of them on demand.
//
// Conversions follow cast semantics: integers truncate to the target width,
// floats convert to integers by truncation toward zero with saturation at the
// target's bounds (NaN becomes 0), booleans become 0 or 1 and any nonzero value
// reads as true.
//
//	n := number.Of(int16(300))
//	n.Uint8()  // 44
//	n.Double() // 300
//
//	p, _ := number.Parse("4294967296") // Int
//	q, _ := number.Parse("2.5")        // Float
//
// Parse tries the kinds in declaration order and keeps the first that
// accepts the text, so integers in the platform int range always come back
// as Int and larger unsigned values as Uint.
package number
