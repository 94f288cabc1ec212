// SPDX-License-Identifier: MIT

package floating

import (
	"fmt"

	"github.com/katalvlaran/lvnum/traits"
)

// SquareRoot returns the square root of x by Newton's iteration, g = (g + x/g)/2
// starting from x/2. Negative inputs yield NaN; ±0, NaN and +Inf are returned
// unchanged. When the iteration budget runs out the last guess is returned;
// use SquareRootChecked to observe that case.
func SquareRoot[T traits.Float](x T, opts ...Option) T {
	r, _ := SquareRootChecked(x, opts...)

	return r
}

// FormSquareRoot replaces *x with SquareRoot(*x, opts...).
func FormSquareRoot[T traits.Float](x *T, opts ...Option) {
	*x = SquareRoot(*x, opts...)
}

// SquareRootChecked is SquareRoot with failures reported:
//   - x < 0 returns NaN and ErrNegativeRadicand;
//   - an exhausted budget returns the last guess and an error wrapping
//     ErrNotConverged.
func SquareRootChecked[T traits.Float](x T, opts ...Option) (T, error) {
	switch {
	case IsNaN(x), IsZero(x):
		return x, nil
	case x < 0:
		return NaN[T](), ErrNegativeRadicand
	case IsInfinite(x):
		return x, nil
	}

	o := buildOptions(opts)
	guess := x / 2
	if guess == 0 {
		// x is the least subnormal.
		guess = x
	}
	for i := 0; i < o.MaxIterations; i++ {
		next := (guess + x/guess) / 2
		if Abs(next-guess) <= tolerance(next, o) {
			return next, nil
		}
		guess = next
	}

	return guess, fmt.Errorf("%w after %d iterations", ErrNotConverged, o.MaxIterations)
}

func tolerance[T traits.Float](g T, o Options) T {
	if o.AbsoluteTolerance > 0 {
		return T(o.AbsoluteTolerance)
	}

	return T(o.ToleranceULPs) * UlpOfOne[T]() * g
}
