//go:build arm64

package simd

import (
	"bytes"
	"encoding/binary"

	"github.com/coregx/bytescan/scalar"
	"github.com/coregx/bytescan/span"
)

// neonPrefixGate is implemented in find_arm64.s. window must have length
// >= 19 (16 bytes of stride plus the 3-byte lookahead the offset-3 load
// needs).
//
//go:noescape
func neonPrefixGate(window []byte, prefix uint32) bool

// find is the NEON scanner. NEON is part of the ARMv8 baseline, so unlike
// amd64's AVX2 there is no runtime feature gate, only a haystack-size gate
// to amortize the vector setup.
func find(haystack []byte, needle span.Needle) int {
	n := needle.Bytes
	nlen := len(n)
	hlen := len(haystack)

	// Reuses the shared minAccelLen threshold (sized for AVX2's wider
	// stride) rather than NEON's own lower natural minimum of 19 bytes, so
	// the two platforms make the same scalar-vs-vector call for a given
	// haystack size.
	if hlen < minAccelLen+3 {
		return scalar.Find(haystack, needle)
	}

	prefix := binary.LittleEndian.Uint32(n[:4])

	cursor := 0
	for cursor+19 <= hlen {
		if neonPrefixGate(haystack[cursor:], prefix) {
			limit := cursor + 16
			for pos := cursor; pos < limit; pos++ {
				if pos+nlen <= hlen && bytes.Equal(haystack[pos:pos+nlen], n) {
					return pos
				}
			}
		}
		cursor += 16
	}

	// cursor < hlen always holds here: the guard above only admits
	// hlen >= minAccelLen+3, and each iteration advances cursor by 16 while
	// requiring cursor+19 <= hlen before doing so.
	tail := scalar.Find(haystack[cursor:], needle)
	if tail == len(haystack[cursor:]) {
		return hlen
	}
	return cursor + tail
}
