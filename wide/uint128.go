// SPDX-License-Identifier: MIT

package wide

import (
	"fmt"
	"math/big"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/lvnum/integer"
	"github.com/katalvlaran/lvnum/traits"
)

// Width is the bit width of Uint128 and Int128.
const Width = 128

// Uint128 is an unsigned 128-bit integer. The zero value is 0.
type Uint128 struct {
	u uint128.Uint128
}

var _ traits.FixedWidthInteger[Uint128] = Uint128{}

// NewUint128 assembles a value from its high and low 64-bit halves.
func NewUint128(hi, lo uint64) Uint128 { return Uint128{uint128.New(lo, hi)} }

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 { return Uint128{uint128.From64(v)} }

// MaxUint128 returns 2^128 - 1.
func MaxUint128() Uint128 { return Uint128{uint128.Max} }

// Uint128FromBig converts n. It returns ErrRange when n is negative or wider
// than 128 bits.
func Uint128FromBig(n *big.Int) (Uint128, error) {
	if n.Sign() < 0 || n.BitLen() > Width {
		return Uint128{}, fmt.Errorf("%w: %s", ErrRange, n)
	}

	// uint128.FromBig shifts its argument in place.
	return Uint128{uint128.FromBig(new(big.Int).Set(n))}, nil
}

// ParseUint128 parses a base-10 unsigned integer, with an optional leading '+'.
func ParseUint128(s string) (Uint128, error) {
	n, err := parseBig(s)
	if err != nil {
		return Uint128{}, err
	}

	return Uint128FromBig(n)
}

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return n, nil
}

// Hi returns the high 64 bits.
func (x Uint128) Hi() uint64 { return x.u.Hi }

// Lo returns the low 64 bits.
func (x Uint128) Lo() uint64 { return x.u.Lo }

// IsZero reports x == 0.
func (x Uint128) IsZero() bool { return x.u.IsZero() }

// Big returns x as a new big.Int.
func (x Uint128) Big() *big.Int { return x.u.Big() }

// String formats x in base 10.
func (x Uint128) String() string { return x.u.String() }

// Int128 reinterprets the bits of x as two's complement.
func (x Uint128) Int128() Int128 { return Int128{x.u} }

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Uint128) Cmp(y Uint128) int { return x.u.Cmp(y.u) }

// Equal reports x == y. go-cmp picks this method up.
func (x Uint128) Equal(y Uint128) bool { return x.u.Equals(y.u) }

// And returns x & y.
func (x Uint128) And(y Uint128) Uint128 { return Uint128{x.u.And(y.u)} }

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 { return Uint128{x.u.Or(y.u)} }

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 { return Uint128{x.u.Xor(y.u)} }

// Not returns ^x.
func (x Uint128) Not() Uint128 { return Uint128{x.u.Xor(uint128.Max)} }

// Lsh shifts x left by n bits; shifts of Width or more give zero.
func (x Uint128) Lsh(n uint) Uint128 {
	if n >= Width {
		return Uint128{}
	}

	return Uint128{x.u.Lsh(n)}
}

// Rsh shifts x right by n bits; shifts of Width or more give zero.
func (x Uint128) Rsh(n uint) Uint128 {
	if n >= Width {
		return Uint128{}
	}

	return Uint128{x.u.Rsh(n)}
}

// Add returns x + rhs, wrapping on overflow.
func (x Uint128) Add(rhs Uint128) Uint128 { return Uint128{x.u.AddWrap(rhs.u)} }

// Sub returns x - rhs, wrapping on overflow.
func (x Uint128) Sub(rhs Uint128) Uint128 { return Uint128{x.u.SubWrap(rhs.u)} }

// Mul returns x * rhs, wrapping on overflow.
func (x Uint128) Mul(rhs Uint128) Uint128 { return Uint128{x.u.MulWrap(rhs.u)} }

// Quo panics with the runtime divide fault when rhs is zero.
func (x Uint128) Quo(rhs Uint128) Uint128 {
	q, _ := x.QuotientAndRemainder(rhs)

	return q
}

// Rem panics with the runtime divide fault when rhs is zero.
func (x Uint128) Rem(rhs Uint128) Uint128 {
	_, r := x.QuotientAndRemainder(rhs)

	return r
}

// QuotientAndRemainder returns (x / rhs, x % rhs) and panics when rhs is zero.
func (x Uint128) QuotientAndRemainder(rhs Uint128) (Uint128, Uint128) {
	q, r := x.u.QuoRem(rhs.u)

	return Uint128{q}, Uint128{r}
}

// IsMultipleOf reports false for a zero divisor.
func (x Uint128) IsMultipleOf(other Uint128) bool {
	if other.IsZero() {
		return false
	}

	return x.Rem(other).IsZero()
}

// Signum returns 0 for zero and 1 otherwise.
func (x Uint128) Signum() Uint128 {
	if x.IsZero() {
		return Uint128{}
	}

	return Uint128From64(1)
}

// IsSigned reports whether the type is signed.
func (Uint128) IsSigned() bool { return false }

// BitWidth returns the width of the type in bits.
func (Uint128) BitWidth() int { return Width }

// TrailingZeroBitCount counts zero bits below the lowest set bit; all bits for zero.
func (x Uint128) TrailingZeroBitCount() int { return x.u.TrailingZeros() }

// LeadingZeroBitCount counts zero bits above the highest set bit.
func (x Uint128) LeadingZeroBitCount() int { return x.u.LeadingZeros() }

// NonzeroBitCount counts the set bits.
func (x Uint128) NonzeroBitCount() int { return x.u.OnesCount() }

// ByteSwapped reverses the byte order of x.
func (x Uint128) ByteSwapped() Uint128 { return Uint128{x.u.ReverseBytes()} }

// BigEndian is the identity on a big-endian host and a byte swap otherwise.
func (x Uint128) BigEndian() Uint128 {
	if integer.HostIsLittleEndian() {
		return x.ByteSwapped()
	}

	return x
}

// LittleEndian is the identity on a little-endian host and a byte swap
// otherwise.
func (x Uint128) LittleEndian() Uint128 {
	if integer.HostIsLittleEndian() {
		return x
	}

	return x.ByteSwapped()
}

// AddingReportingOverflow returns the wrapped sum and whether it overflowed.
func (x Uint128) AddingReportingOverflow(rhs Uint128) (Uint128, bool) {
	r := x.Add(rhs)

	return r, r.Cmp(x) < 0
}

// SubtractingReportingOverflow returns the wrapped difference and whether it overflowed.
func (x Uint128) SubtractingReportingOverflow(rhs Uint128) (Uint128, bool) {
	return x.Sub(rhs), rhs.Cmp(x) > 0
}

// MultipliedReportingOverflow returns the wrapped product and whether it overflowed.
func (x Uint128) MultipliedReportingOverflow(rhs Uint128) (Uint128, bool) {
	r := x.Mul(rhs)
	if x.IsZero() {
		return r, false
	}

	return r, !r.Quo(x).Equal(rhs)
}

// DividedReportingOverflow reports (0, true) for a zero divisor.
func (x Uint128) DividedReportingOverflow(rhs Uint128) (Uint128, bool) {
	if rhs.IsZero() {
		return Uint128{}, true
	}

	return x.Quo(rhs), false
}

// RemainderReportingOverflow reports (0, true) for a zero divisor.
func (x Uint128) RemainderReportingOverflow(rhs Uint128) (Uint128, bool) {
	if rhs.IsZero() {
		return Uint128{}, true
	}

	return x.Rem(rhs), false
}
