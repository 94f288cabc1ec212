// SPDX-License-Identifier: MIT

package number

import (
	"strconv"

	"github.com/katalvlaran/lvnum/floating"
)

// String renders the held value: "true"/"false" for Bool, base-10 digits for
// integers and the shortest plain decimal for floats ("inf", "-inf" and "NaN"
// for the special values).
func (n Number) String() string {
	switch n.kind {
	case Bool:
		return strconv.FormatBool(n.u != 0)
	case Float:
		return formatFloat(n.f, 32)
	case Double:
		return formatFloat(n.f, 64)
	}
	if n.kind.category() == signedCategory {
		return strconv.FormatInt(n.i, 10)
	}

	return strconv.FormatUint(n.u, 10)
}

func formatFloat(f float64, bitSize int) string {
	switch floating.Classify(f) {
	case floating.QuietNaN, floating.SignalingNaN:
		return "NaN"
	case floating.PositiveInfinity:
		return "inf"
	case floating.NegativeInfinity:
		return "-inf"
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// MarshalText implements encoding.TextMarshaler with the String form. The Kind
// is not preserved; UnmarshalText re-derives it as Parse does.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (n *Number) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v

	return nil
}
