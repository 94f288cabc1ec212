// SPDX-License-Identifier: MIT

package traits

import "golang.org/x/exp/constraints"

// Signed permits every built-in signed integer type.
type Signed interface {
	constraints.Signed
}

// Unsigned permits every built-in unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Integer permits every built-in integer type.
type Integer interface {
	constraints.Integer
}

// Float permits float32 and float64 (and types derived from them).
type Float interface {
	constraints.Float
}

// Number permits every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber permits the built-in types that have a meaningful negation.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}
