// SPDX-License-Identifier: MIT

package integer

import (
	"encoding/binary"
	"math/bits"

	"github.com/katalvlaran/lvnum/traits"
)

// hostLittleEndian is resolved once from the native byte order.
var hostLittleEndian = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)

	return probe[0] == 1
}()

// HostIsLittleEndian reports whether the running machine stores the least
// significant byte first.
func HostIsLittleEndian() bool {
	return hostLittleEndian
}

// ByteSwapped reverses the byte order of a. Single-byte types are unchanged.
func ByteSwapped[T traits.Integer](a T) T {
	switch BitWidth[T]() {
	case 8:
		return a
	case 16:
		return T(bits.ReverseBytes16(uint16(a)))
	case 32:
		return T(bits.ReverseBytes32(uint32(a)))
	default:
		return T(bits.ReverseBytes64(uint64(a)))
	}
}

// BigEndian returns a with the byte order a big-endian host would store:
// identity on big-endian hosts, a byte swap otherwise.
func BigEndian[T traits.Integer](a T) T {
	if hostLittleEndian {
		return ByteSwapped(a)
	}

	return a
}

// LittleEndian returns a with the byte order a little-endian host would store.
func LittleEndian[T traits.Integer](a T) T {
	if hostLittleEndian {
		return a
	}

	return ByteSwapped(a)
}
