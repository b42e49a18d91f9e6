//go:build amd64

package simd

import "github.com/coregx/bytescan/scalar"

// countByte on amd64 delegates to the scalar SWAR counter. AVX2 has no
// single-instruction per-byte population count the way NEON's VCNT does, so
// there is no vector counter kernel on this architecture.
func countByte(haystack []byte, c byte) int {
	return scalar.CountByte(haystack, c)
}
