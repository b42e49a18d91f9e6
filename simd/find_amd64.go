//go:build amd64

package simd

import (
	"bytes"
	"encoding/binary"

	"github.com/coregx/bytescan/scalar"
	"github.com/coregx/bytescan/span"
	"golang.org/x/sys/cpu"
)

// hasAVX2 is resolved once at package init, a cached dispatch decision
// rather than a per-call CPUID.
var hasAVX2 = cpu.X86.HasAVX2

// avx2PrefixGate is implemented in find_amd64.s. It performs the four
// unaligned 32-byte loads at offsets 0..3 from window (offsets 0, 1, 2, 3
// relative to window's start), compares 32-bit lanes against prefix
// broadcast to all eight lanes, ORs the four comparison masks together, and
// reports whether any lane in any of the four loads matched.
//
// window must have length >= 35 (32 bytes of stride plus the 3-byte
// lookahead the offset-3 load needs).
//
//go:noescape
func avx2PrefixGate(window []byte, prefix uint32) bool

// find broadcasts the needle's first 4 bytes once, then per 32-byte stride
// runs the AVX2 prefilter gate. A positive gate
// triggers scalar verification of all 32 candidate start positions in that
// window, in order, so first-match discipline holds even though the gate
// only tells us "some dword in this window matched the prefix", not which
// one. The haystack tail (< 35 bytes remaining) falls through to the
// scalar entry point, scalar.Find, which also runs whenever AVX2 is unavailable or
// the haystack is too small to amortize vector setup.
func find(haystack []byte, needle span.Needle) int {
	n := needle.Bytes
	nlen := len(n)
	hlen := len(haystack)

	if !hasAVX2 || hlen < minAccelLen+3 {
		return scalar.Find(haystack, needle)
	}

	prefix := binary.LittleEndian.Uint32(n[:4])

	cursor := 0
	for cursor+35 <= hlen {
		if avx2PrefixGate(haystack[cursor:], prefix) {
			limit := cursor + 32
			for pos := cursor; pos < limit; pos++ {
				if pos+nlen <= hlen && bytes.Equal(haystack[pos:pos+nlen], n) {
					return pos
				}
			}
		}
		cursor += 32
	}

	// cursor < hlen always holds here: the loop guard above only admits
	// hlen >= minAccelLen+3, and each iteration advances cursor by 32 while
	// requiring cursor+35 <= hlen before doing so.
	tail := scalar.Find(haystack[cursor:], needle)
	if tail == len(haystack[cursor:]) {
		return hlen
	}
	return cursor + tail
}
