//go:build arm64

package simd

import "github.com/coregx/bytescan/scalar"

// neonCountChunk is implemented in count_arm64.s and counts occurrences of
// target within exactly 16 bytes of chunk.
//
//go:noescape
func neonCountChunk(chunk []byte, target byte) int

// countByte is the NEON byte counter: 16-byte strides counted with the
// vector kernel, with the (sub-16-byte) tail counted by the scalar SWAR
// counter. Go's unaligned NEON loads need no alignment prologue for
// correctness, so this only splits on whole-chunk boundaries.
func countByte(haystack []byte, c byte) int {
	n := len(haystack)
	count := 0
	i := 0
	for ; i+16 <= n; i += 16 {
		count += neonCountChunk(haystack[i:i+16], c)
	}
	count += scalar.CountByte(haystack[i:], c)
	return count
}
