// SPDX-License-Identifier: MIT

package floating

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/katalvlaran/lvnum/traits"
)

// layout describes the IEEE-754 binary interchange format of one float type.
// Bit patterns of both widths travel in a uint64.
type layout struct {
	width    uint // total bits: 32 or 64
	mantBits uint // explicit significand bits: 23 or 52
	expBits  uint // exponent field bits: 8 or 11
	bias     int
}

var (
	binary32 = layout{width: 32, mantBits: 23, expBits: 8, bias: 127}
	binary64 = layout{width: 64, mantBits: 52, expBits: 11, bias: 1023}
)

func layoutOf[T traits.Float]() layout {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return binary32
	}

	return binary64
}

func (l layout) signMask() uint64 { return 1 << (l.width - 1) }
func (l layout) expMax() uint64   { return 1<<l.expBits - 1 }
func (l layout) expMask() uint64  { return l.expMax() << l.mantBits }
func (l layout) mantMask() uint64 { return 1<<l.mantBits - 1 }
func (l layout) quietBit() uint64 { return 1 << (l.mantBits - 1) }
func (l layout) fullMask() uint64 { return l.signMask() | l.expMask() | l.mantMask() }

// fields splits a pattern into its sign bit, biased exponent and trailing
// significand.
func (l layout) fields(b uint64) (neg bool, exp, mant uint64) {
	return b&l.signMask() != 0, (b >> l.mantBits) & l.expMax(), b & l.mantMask()
}

func toBits[T traits.Float](x T) uint64 {
	if unsafe.Sizeof(x) == 4 {
		return uint64(math.Float32bits(float32(x)))
	}

	return math.Float64bits(float64(x))
}

func fromBits[T traits.Float](b uint64) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Float32frombits(uint32(b)))
	}

	return T(math.Float64frombits(b))
}

// Abs clears the sign bit. NaN payloads are preserved.
func Abs[T traits.Float](x T) T {
	l := layoutOf[T]()

	return fromBits[T](toBits(x) &^ l.signMask())
}

// Exponent returns the unbiased binary exponent e such that
// |x| = Significand(x) * 2^e. Subnormals report their true exponent.
// Zero yields math.MinInt; NaN and ±Inf yield math.MaxInt.
func Exponent[T traits.Float](x T) int {
	l := layoutOf[T]()
	_, exp, mant := l.fields(toBits(x))
	switch {
	case exp == l.expMax():
		return math.MaxInt
	case exp != 0:
		return int(exp) - l.bias
	case mant == 0:
		return math.MinInt
	}
	top := 63 - bits.LeadingZeros64(mant)

	return 1 - l.bias - int(l.mantBits) + top
}

// Significand returns the value in [1, 2) that, scaled by 2^Exponent(x),
// gives |x|. Zero yields +0, ±Inf yields +Inf and NaN is returned unchanged.
func Significand[T traits.Float](x T) T {
	l := layoutOf[T]()
	_, exp, mant := l.fields(toBits(x))
	switch {
	case exp == l.expMax() && mant != 0:
		return x
	case exp == l.expMax():
		return fromBits[T](l.expMask())
	case exp == 0 && mant == 0:
		return 0
	case exp == 0:
		top := uint(63 - bits.LeadingZeros64(mant))
		mant = (mant << (l.mantBits - top)) & l.mantMask()
	}

	return fromBits[T](uint64(l.bias)<<l.mantBits | mant)
}
