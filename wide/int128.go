// SPDX-License-Identifier: MIT

package wide

import (
	"fmt"
	"math"
	"math/big"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/lvnum/traits"
)

const signBit = 1 << 63

// Int128 is a signed 128-bit integer in two's complement. The zero value is 0.
type Int128 struct {
	u uint128.Uint128
}

var (
	_ traits.FixedWidthInteger[Int128] = Int128{}
	_ traits.SignedNumeric[Int128]     = Int128{}
)

// NewInt128 assembles a value from its signed high half and unsigned low half.
func NewInt128(hi int64, lo uint64) Int128 { return Int128{uint128.New(lo, uint64(hi))} }

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 { return NewInt128(v>>63, uint64(v)) }

// MaxInt128 returns 2^127 - 1.
func MaxInt128() Int128 { return NewInt128(math.MaxInt64, math.MaxUint64) }

// MinInt128 returns -2^127.
func MinInt128() Int128 { return NewInt128(math.MinInt64, 0) }

var (
	minInt128Big = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), Width-1))
	maxInt128Big = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Width-1), big.NewInt(1))
	twoTo128     = new(big.Int).Lsh(big.NewInt(1), Width)
)

// Int128FromBig converts n, returning ErrRange outside [-2^127, 2^127-1].
func Int128FromBig(n *big.Int) (Int128, error) {
	if n.Cmp(minInt128Big) < 0 || n.Cmp(maxInt128Big) > 0 {
		return Int128{}, fmt.Errorf("%w: %s", ErrRange, n)
	}
	m := new(big.Int).Set(n)
	if m.Sign() < 0 {
		m.Add(m, twoTo128)
	}

	return Int128{uint128.FromBig(m)}, nil
}

// ParseInt128 parses a base-10 integer with an optional sign.
func ParseInt128(s string) (Int128, error) {
	n, err := parseBig(s)
	if err != nil {
		return Int128{}, err
	}

	return Int128FromBig(n)
}

// Hi returns the high 64 bits.
func (x Int128) Hi() int64 { return int64(x.u.Hi) }

// Lo returns the low 64 bits.
func (x Int128) Lo() uint64 { return x.u.Lo }

// IsZero reports x == 0.
func (x Int128) IsZero() bool { return x.u.IsZero() }

// IsNegative reports x < 0.
func (x Int128) IsNegative() bool { return x.u.Hi&signBit != 0 }

// Uint128 reinterprets the bits of x as unsigned.
func (x Int128) Uint128() Uint128 { return Uint128{x.u} }

// Equal reports x == y.
func (x Int128) Equal(y Int128) bool { return x.u.Equals(y.u) }

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Int128) Cmp(y Int128) int {
	// Flipping the sign bit maps two's complement order onto unsigned order.
	a := uint128.New(x.u.Lo, x.u.Hi^signBit)
	b := uint128.New(y.u.Lo, y.u.Hi^signBit)

	return a.Cmp(b)
}

// Magnitude returns |x| as an unsigned value; |MinInt128| is 2^127.
func (x Int128) Magnitude() Uint128 {
	if x.IsNegative() {
		return Uint128{uint128.Zero.SubWrap(x.u)}
	}

	return Uint128{x.u}
}

// Big returns x as a new big.Int.
func (x Int128) Big() *big.Int {
	n := x.u.Big()
	if x.IsNegative() {
		n.Sub(n, twoTo128)
	}

	return n
}

// String formats x in base 10.
func (x Int128) String() string {
	if x.IsNegative() {
		return "-" + x.Magnitude().String()
	}

	return x.u.String()
}

// Add returns x + rhs, wrapping on overflow.
func (x Int128) Add(rhs Int128) Int128 { return Int128{x.u.AddWrap(rhs.u)} }

// Sub returns x - rhs, wrapping on overflow.
func (x Int128) Sub(rhs Int128) Int128 { return Int128{x.u.SubWrap(rhs.u)} }

// Mul returns x * rhs, wrapping on overflow.
func (x Int128) Mul(rhs Int128) Int128 { return Int128{x.u.MulWrap(rhs.u)} }

// Neg panics with traits.ErrNegationOverflow for MinInt128.
func (x Int128) Neg() Int128 {
	if x.Equal(MinInt128()) {
		panic(traits.ErrNegationOverflow)
	}

	return Int128{uint128.Zero.SubWrap(x.u)}
}

func (x Int128) negWrap() Int128 { return Int128{uint128.Zero.SubWrap(x.u)} }

// QuotientAndRemainder truncates toward zero like Go's operators: the
// remainder takes the dividend's sign, and MinInt128 / -1 wraps to MinInt128.
// It panics with the runtime divide fault when rhs is zero.
func (x Int128) QuotientAndRemainder(rhs Int128) (Int128, Int128) {
	q, r := x.Magnitude().u.QuoRem(rhs.Magnitude().u)
	quo, rem := Int128{q}, Int128{r}
	if x.IsNegative() != rhs.IsNegative() {
		quo = quo.negWrap()
	}
	if x.IsNegative() {
		rem = rem.negWrap()
	}

	return quo, rem
}

// Quo returns x / rhs truncated toward zero. It panics when rhs is zero.
func (x Int128) Quo(rhs Int128) Int128 {
	q, _ := x.QuotientAndRemainder(rhs)

	return q
}

// Rem returns x % rhs with the sign of x. It panics when rhs is zero.
func (x Int128) Rem(rhs Int128) Int128 {
	_, r := x.QuotientAndRemainder(rhs)

	return r
}

// IsMultipleOf reports false for a zero divisor.
func (x Int128) IsMultipleOf(other Int128) bool {
	if other.IsZero() {
		return false
	}

	return x.Rem(other).IsZero()
}

// Signum returns -1, 0 or +1 by the sign of x.
func (x Int128) Signum() Int128 {
	switch {
	case x.IsNegative():
		return Int128From64(-1)
	case x.IsZero():
		return Int128{}
	}

	return Int128From64(1)
}

// IsSigned reports whether the type is signed.
func (Int128) IsSigned() bool { return true }

// BitWidth returns the width of the type in bits.
func (Int128) BitWidth() int { return Width }

// TrailingZeroBitCount counts zero bits below the lowest set bit; all bits for zero.
func (x Int128) TrailingZeroBitCount() int { return x.Magnitude().TrailingZeroBitCount() }

// LeadingZeroBitCount counts zero bits above the highest set bit.
func (x Int128) LeadingZeroBitCount() int { return x.u.LeadingZeros() }

// NonzeroBitCount counts the set bits.
func (x Int128) NonzeroBitCount() int { return x.u.OnesCount() }

// ByteSwapped reverses the byte order of x.
func (x Int128) ByteSwapped() Int128 { return Int128{x.u.ReverseBytes()} }

// BigEndian converts x between host and big-endian byte order.
func (x Int128) BigEndian() Int128 { return x.Uint128().BigEndian().Int128() }

// LittleEndian converts x between host and little-endian byte order.
func (x Int128) LittleEndian() Int128 { return x.Uint128().LittleEndian().Int128() }

// AddingReportingOverflow returns the wrapped sum and whether it overflowed.
func (x Int128) AddingReportingOverflow(rhs Int128) (Int128, bool) {
	r := x.Add(rhs)

	return r, x.IsNegative() == rhs.IsNegative() && r.IsNegative() != x.IsNegative()
}

// SubtractingReportingOverflow returns the wrapped difference and whether it overflowed.
func (x Int128) SubtractingReportingOverflow(rhs Int128) (Int128, bool) {
	r := x.Sub(rhs)

	return r, x.IsNegative() != rhs.IsNegative() && r.IsNegative() != x.IsNegative()
}

// MultipliedReportingOverflow returns the wrapped product and whether it overflowed.
func (x Int128) MultipliedReportingOverflow(rhs Int128) (Int128, bool) {
	r := x.Mul(rhs)
	if rhs.IsZero() {
		return r, false
	}
	minusOne, lowest := Int128From64(-1), MinInt128()
	if rhs.Equal(minusOne) {
		return r, x.Equal(lowest)
	}

	return r, !r.Quo(rhs).Equal(x)
}

// DividedReportingOverflow reports (0, true) for a zero divisor and
// (MinInt128, true) for MinInt128 / -1.
func (x Int128) DividedReportingOverflow(rhs Int128) (Int128, bool) {
	switch {
	case rhs.IsZero():
		return Int128{}, true
	case x.Equal(MinInt128()) && rhs.Equal(Int128From64(-1)):
		return x, true
	}

	return x.Quo(rhs), false
}

// RemainderReportingOverflow reports (0, true) for a zero divisor and for
// MinInt128 % -1.
func (x Int128) RemainderReportingOverflow(rhs Int128) (Int128, bool) {
	switch {
	case rhs.IsZero():
		return Int128{}, true
	case x.Equal(MinInt128()) && rhs.Equal(Int128From64(-1)):
		return Int128{}, true
	}

	return x.Rem(rhs), false
}
