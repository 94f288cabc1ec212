// SPDX-License-Identifier: MIT

package number_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/number"
)

// ExampleParse shows the kind chosen for several literals.
func ExampleParse() {
	for _, s := range []string{"true", "-3", "18446744073709551615", "2.5", "1e40"} {
		n, err := number.Parse(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(n.Kind(), n)
	}
	// Output:
	// Bool true
	// Int -3
	// Uint 18446744073709551615
	// Float 2.5
	// Double 10000000000000000000000000000000000000000
}

// ExampleNumber_Int8 shows truncating and saturating conversions.
func ExampleNumber_Int8() {
	fmt.Println(number.Of(int16(300)).Int8())
	fmt.Println(number.Of(1e9).Int8())
	fmt.Println(number.Of(-7.9).Int8())
	// Output:
	// 44
	// 127
	// -7
}
