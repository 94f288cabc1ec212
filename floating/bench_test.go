// SPDX-License-Identifier: MIT

package floating_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/floating"
)

// sinks to defeat dead-code elimination
var (
	sinkF64   float64
	sinkF32   float32
	sinkClass floating.Classification
)

func BenchmarkSquareRoot(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF64 = floating.SquareRoot(float64(i) + 2)
	}
}

func BenchmarkSquareRootFloat32(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = floating.SquareRoot(float32(i&0xFFFF) + 2)
	}
}

func BenchmarkRoundedWith(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF64 = floating.RoundedWith(float64(i)*0.37, floating.ToNearestOrAwayFromZero)
	}
}

func BenchmarkClassify(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkClass = floating.Classify(float64(i) - 0.5)
	}
}
