// Package simd provides the vectorized byte-search kernels: the AVX2 scanner
// for x86-64 and the NEON scanner and byte counter for arm64. Both are
// precondition-gated on needle length >= 4; shorter needles always belong
// to scalar's dedicated kernels regardless of hardware.
//
// Each exported entry point is always callable on every platform: the
// amd64 and arm64 build-tagged files gate on runtime CPU-feature detection
// and input size internally and fall back to the scalar package when the
// vector path does not apply, so callers never need a build-tag switch of
// their own.
package simd

import "github.com/coregx/bytescan/span"

// minAccelLen is the smallest haystack length for which vector setup cost is
// amortized; below it the scalar path is at least as fast.
const minAccelLen = 32

// Find returns the index of the first occurrence of needle in haystack using
// the best available vector kernel, or len(haystack) if absent. Panics if
// needle.Len() < 4: routing needles that short here is a caller bug; use
// scalar.FindShort for those instead.
func Find(haystack []byte, needle span.Needle) int {
	if needle.Len() < 4 {
		panic("simd: Find requires a needle of length >= 4")
	}
	if len(haystack) < needle.Len() {
		return len(haystack)
	}
	return find(haystack, needle)
}

// CountByte returns the number of occurrences of c in haystack using the
// best available vector kernel (NEON on arm64; the scalar SWAR counter
// elsewhere).
func CountByte(haystack []byte, c byte) int {
	return countByte(haystack, c)
}
