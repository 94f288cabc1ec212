// SPDX-License-Identifier: MIT

package floating

import "math"

const (
	// DefaultToleranceULPs is the relative stopping distance of the square root
	// iteration, in units of UlpOfOne scaled by the current guess.
	DefaultToleranceULPs = 4.0

	// DefaultMaxIterations bounds the Newton loop. Halving from the largest
	// float64 toward its root takes a little over 500 steps.
	DefaultMaxIterations = 2048
)

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid  = "floating: WithToleranceULPs: ulps must be positive and finite"
	panicAbsoluteInvalid   = "floating: WithAbsoluteTolerance: tol must be finite, non-negative"
	panicIterationsInvalid = "floating: WithMaxIterations: n must be > 0"
)

// Options configures SquareRoot and SquareRootChecked.
type Options struct {
	// ToleranceULPs is the relative tolerance, ignored when AbsoluteTolerance
	// is positive.
	ToleranceULPs float64
	// AbsoluteTolerance, when positive, replaces the relative tolerance with a
	// fixed distance between successive guesses.
	AbsoluteTolerance float64
	// MaxIterations is the Newton step budget.
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		ToleranceULPs: DefaultToleranceULPs,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithToleranceULPs sets the relative tolerance.
// Panics if ulps is not a positive finite number.
func WithToleranceULPs(ulps float64) Option {
	if !(ulps > 0) || math.IsInf(ulps, 1) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.ToleranceULPs = ulps }
}

// WithAbsoluteTolerance sets a fixed stopping distance; zero restores the
// relative tolerance.
// Panics if tol is negative, NaN or infinite.
func WithAbsoluteTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		panic(panicAbsoluteInvalid)
	}

	return func(o *Options) { o.AbsoluteTolerance = tol }
}

// WithMaxIterations sets the Newton step budget.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
