// SPDX-License-Identifier: MIT

package number

import (
	"github.com/katalvlaran/lvnum/floating"
	"github.com/katalvlaran/lvnum/integer"
	"github.com/katalvlaran/lvnum/traits"
)

// Scalar lists the primitive types a Number can hold, one per Kind.
type Scalar interface {
	bool | int | int8 | int16 | int32 | uint | uint8 | uint16 | uint32 | float32 | float64
}

// Number holds one primitive value tagged with its Kind. The zero value is
// Bool false. Numbers are small values; copy them freely.
type Number struct {
	kind Kind
	i    int64   // Int*
	u    uint64  // Bool (0 or 1) and Uint*
	f    float64 // Float (exactly widened) and Double
}

// Of wraps v, choosing the Kind from its type.
func Of[T Scalar](v T) Number {
	switch x := any(v).(type) {
	case bool:
		if x {
			return Number{kind: Bool, u: 1}
		}
		return Number{kind: Bool}
	case int:
		return Number{kind: Int, i: int64(x)}
	case int8:
		return Number{kind: Int8, i: int64(x)}
	case int16:
		return Number{kind: Int16, i: int64(x)}
	case int32:
		return Number{kind: Int32, i: int64(x)}
	case uint:
		return Number{kind: Uint, u: uint64(x)}
	case uint8:
		return Number{kind: Uint8, u: uint64(x)}
	case uint16:
		return Number{kind: Uint16, u: uint64(x)}
	case uint32:
		return Number{kind: Uint32, u: uint64(x)}
	case float32:
		return Number{kind: Float, f: float64(x)}
	}

	return Number{kind: Double, f: any(v).(float64)}
}

// Kind reports which primitive n holds.
func (n Number) Kind() Kind { return n.kind }

// Bool reports whether n is true or nonzero. NaN is nonzero.
func (n Number) Bool() bool {
	switch n.kind.category() {
	case signedCategory:
		return n.i != 0
	case floatCategory:
		return n.f != 0
	}

	return n.u != 0
}

func (n Number) Int() int        { return toInteger[int](n) }
func (n Number) Int8() int8      { return toInteger[int8](n) }
func (n Number) Int16() int16    { return toInteger[int16](n) }
func (n Number) Int32() int32    { return toInteger[int32](n) }
func (n Number) Uint() uint      { return toInteger[uint](n) }
func (n Number) Uint8() uint8    { return toInteger[uint8](n) }
func (n Number) Uint16() uint16  { return toInteger[uint16](n) }
func (n Number) Uint32() uint32  { return toInteger[uint32](n) }
func (n Number) Float() float32  { return toFloat[float32](n) }
func (n Number) Double() float64 { return toFloat[float64](n) }

func toInteger[T traits.Integer](n Number) T {
	switch n.kind.category() {
	case signedCategory:
		return T(n.i)
	case floatCategory:
		return saturate[T](n.f)
	}

	return T(n.u)
}

func toFloat[T traits.Float](n Number) T {
	switch n.kind.category() {
	case signedCategory:
		return T(n.i)
	case floatCategory:
		return T(n.f)
	}

	return T(n.u)
}

// saturate truncates f toward zero and clamps it to T's range; NaN maps to 0.
func saturate[T traits.Integer](f float64) T {
	lo, hi := integer.Min[T](), integer.Max[T]()
	switch {
	case floating.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	// float64(hi) rounds up to a power of two for 64-bit types, so >= is exact.
	case f >= float64(hi):
		return hi
	}

	return T(floating.Trunc(f))
}
