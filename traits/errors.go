// SPDX-License-Identifier: MIT

package traits

import "errors"

// ErrNegationOverflow is the panic value raised when negating the minimum value
// of a signed integer type, whose magnitude is not representable.
var ErrNegationOverflow = errors.New("traits: attempt to negate with overflow")
