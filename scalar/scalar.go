package scalar

import "github.com/coregx/bytescan/span"

// Find is the scalar entry point spanning the whole needle-length range: the
// empty-needle convention (always matches at 0), the short-needle kernels
// (length 1-4), and the general anomaly-prefilter scanner (length >= 5). It
// is what the top-level dispatcher falls back to when no vector kernel
// applies, and what the vector kernels themselves call for a haystack too
// small to vectorize and for a haystack tail too short for another
// vectorized stride.
func Find(haystack []byte, needle span.Needle) int {
	nlen := needle.Len()
	hlen := len(haystack)

	if nlen == 0 {
		return 0
	}
	if nlen > hlen {
		return hlen
	}
	if nlen <= 4 {
		return FindShort(haystack, needle.Bytes)
	}
	return General(haystack, needle)
}
