// SPDX-License-Identifier: MIT

package number_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/number"
)

// sinks to defeat dead-code elimination
var (
	sinkNumber number.Number
	sinkInt    int
)

func BenchmarkParseFloat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkNumber, _ = number.Parse("3.25")
	}
}

func BenchmarkSaturatingCast(b *testing.B) {
	n := number.Of(1e300)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt += int(n.Int16())
	}
}
