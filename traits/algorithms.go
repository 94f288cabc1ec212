// SPDX-License-Identifier: MIT

package traits

// Sum folds xs with Add starting from the zero value of T.
// An empty input yields the zero value.
func Sum[T AdditiveArithmetic[T]](xs ...T) T {
	var acc T
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// SumOf is Sum for built-in numbers. Integer sums wrap on overflow like the
// underlying + operator.
func SumOf[T Number](xs ...T) T {
	var acc T
	for _, x := range xs {
		acc += x
	}

	return acc
}

// SumReportingOverflow folds xs with AddingReportingOverflow. The returned sum
// is the wrapped result; overflowed stays true once any partial sum overflowed.
func SumReportingOverflow[T Overflowing[T]](xs ...T) (sum T, overflowed bool) {
	for _, x := range xs {
		var o bool
		sum, o = sum.AddingReportingOverflow(x)
		overflowed = overflowed || o
	}

	return sum, overflowed
}
