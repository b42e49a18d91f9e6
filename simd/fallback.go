//go:build !amd64 && !arm64

package simd

import (
	"github.com/coregx/bytescan/scalar"
	"github.com/coregx/bytescan/span"
)

// find on platforms with neither an AVX2 nor a NEON kernel defers entirely
// to the scalar entry point, scalar.Find.
func find(haystack []byte, needle span.Needle) int {
	return scalar.Find(haystack, needle)
}

// countByte falls back to the scalar SWAR counter.
func countByte(haystack []byte, c byte) int {
	return scalar.CountByte(haystack, c)
}
