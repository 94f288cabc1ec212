// SPDX-License-Identifier: MIT

package wide_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/wide"
)

// sinks to defeat dead-code elimination
var (
	sinkU    wide.Uint128
	sinkI    wide.Int128
	sinkBool bool
)

func BenchmarkUint128MultipliedReportingOverflow(b *testing.B) {
	x := wide.NewUint128(0xDEADBEEF, 0xFEEDFACECAFEBABE)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		sinkU, sinkBool = x.MultipliedReportingOverflow(wide.Uint128From64(uint64(n)))
	}
}

func BenchmarkInt128QuotientAndRemainder(b *testing.B) {
	x := wide.MinInt128()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		sinkI, _ = x.QuotientAndRemainder(wide.Int128From64(int64(n) | 1))
	}
}
