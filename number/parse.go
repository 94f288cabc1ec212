// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/katalvlaran/lvnum/integer"
)

// parsers run in Kind order; the first success wins. The narrower integer
// kinds only accept a subset of what Int and Uint accept, so Parse never
// yields them.
var parsers = [...]func(string) (Number, bool){
	parseBool,
	parseSigned[int],
	parseSigned[int8],
	parseSigned[int16],
	parseSigned[int32],
	parseUnsigned[uint],
	parseUnsigned[uint8],
	parseUnsigned[uint16],
	parseUnsigned[uint32],
	parseFloat[float32],
	parseFloat[float64],
}

// Parse reads s as the first Kind that accepts it: exactly "true" or
// "false", then base-10 integers that fit, then floating-point literals that
// do not overflow. A value too large for float32 such as "1e300" parses as
// Double. Text no Kind accepts returns an error wrapping ErrSyntax.
func Parse(s string) (Number, error) {
	for _, parse := range parsers {
		if n, ok := parse(s); ok {
			return n, nil
		}
	}

	return Number{}, fmt.Errorf("%w: %q", ErrSyntax, s)
}

func parseBool(s string) (Number, bool) {
	switch s {
	case "true":
		return Of(true), true
	case "false":
		return Of(false), true
	}

	return Number{}, false
}

func parseSigned[T int | int8 | int16 | int32](s string) (Number, bool) {
	v, err := strconv.ParseInt(s, 10, integer.BitWidth[T]())
	if err != nil {
		return Number{}, false
	}

	return Of(T(v)), true
}

func parseUnsigned[T uint | uint8 | uint16 | uint32](s string) (Number, bool) {
	v, err := strconv.ParseUint(s, 10, integer.BitWidth[T]())
	if err != nil {
		return Number{}, false
	}

	return Of(T(v)), true
}

func parseFloat[T float32 | float64](s string) (Number, bool) {
	if !isDecimalFloat(s) {
		return Number{}, false
	}
	var zero T
	v, err := strconv.ParseFloat(s, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return Number{}, false
	}

	return Of(T(v)), true
}

// isDecimalFloat rejects the Go-only literal forms strconv.ParseFloat accepts:
// hexadecimal mantissas and digit-separating underscores.
func isDecimalFloat(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	digits := strings.TrimLeft(s, "+-")

	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}
