// Package bytescan is a byte-oriented substring search engine: a family of
// hand-tuned scalar and SIMD algorithms that locate fixed needles inside
// large haystacks. It has no I/O, no allocation on its hot paths, and no
// shared mutable state: every operation is a pure function of its
// arguments, safe to call from arbitrarily many goroutines concurrently
// provided the caller does not mutate the buffers mid-call.
//
// The entry points are Find (locate the first occurrence of a needle) and
// CountByte (count occurrences of a single byte). Both return an in-band
// sentinel, len(haystack) for Find on a miss, rather than an error, since
// "not found" is normal, not exceptional. Precondition violations (a
// malformed Needle) are rejected at construction time by span.NewNeedle,
// never silently by touching out-of-bounds memory.
package bytescan

import (
	"github.com/coregx/bytescan/span"
)

// Find returns the index of the first occurrence of needle in haystack, or
// len(haystack) if it does not occur. The empty needle always matches at
// index 0.
//
//	bytescan.Find([]byte("abracadabra"), span.Simple([]byte("cad"))) // 4
func Find(haystack []byte, needle span.Needle) int {
	return dispatch(haystack, needle)
}

// FindBytes is a convenience wrapper over Find for callers who have no use
// for a custom anomaly offset.
func FindBytes(haystack, needle []byte) int {
	return Find(haystack, span.Simple(needle))
}

// CountByte returns the number of indices i such that haystack[i] == c.
func CountByte(haystack []byte, c byte) int {
	return countDispatch(haystack, c)
}
