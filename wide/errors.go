// SPDX-License-Identifier: MIT

package wide

import "errors"

var (
	// ErrSyntax indicates the text is not a base-10 integer.
	ErrSyntax = errors.New("wide: invalid syntax")

	// ErrRange indicates the parsed integer does not fit in 128 bits.
	ErrRange = errors.New("wide: value out of range")
)
