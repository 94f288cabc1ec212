// SPDX-License-Identifier: MIT

package number

import (
	"cmp"

	"github.com/katalvlaran/lvnum/floating"
)

// Compare orders n against o: first by Kind in declaration order, then by
// value within the same Kind. ok is false when both are floating kinds and
// either value is NaN, in which case c is 0.
func (n Number) Compare(o Number) (c int, ok bool) {
	if n.kind != o.kind {
		return cmp.Compare(n.kind, o.kind), true
	}
	switch n.kind.category() {
	case signedCategory:
		return cmp.Compare(n.i, o.i), true
	case floatCategory:
		if floating.IsNaN(n.f) || floating.IsNaN(o.f) {
			return 0, false
		}
		return cmp.Compare(n.f, o.f), true
	}

	return cmp.Compare(n.u, o.u), true
}

// Equal reports whether n and o hold the same Kind and an equal value.
// A NaN is not equal to itself, and Of(1) is not equal to Of(int8(1)).
func (n Number) Equal(o Number) bool {
	c, ok := n.Compare(o)

	return ok && c == 0 && n.kind == o.kind
}
