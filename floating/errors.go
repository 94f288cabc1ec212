// SPDX-License-Identifier: MIT

package floating

import "errors"

var (
	// ErrNegativeRadicand is returned by SquareRootChecked for inputs below zero.
	// The accompanying value is NaN.
	ErrNegativeRadicand = errors.New("floating: square root of a negative value")

	// ErrNotConverged is returned by SquareRootChecked when the Newton iteration
	// exhausts its iteration budget before meeting the tolerance. The
	// accompanying value is the last guess.
	ErrNotConverged = errors.New("floating: square root did not converge")

	// ErrUnknownRoundingRule is the panic value for a RoundingRule outside the
	// declared constants.
	ErrUnknownRoundingRule = errors.New("floating: unknown rounding rule")
)
