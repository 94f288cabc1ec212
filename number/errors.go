// SPDX-License-Identifier: MIT

package number

import "errors"

// ErrSyntax indicates the text is not a boolean, integer or floating-point
// literal any kind accepts.
var ErrSyntax = errors.New("number: invalid syntax")
