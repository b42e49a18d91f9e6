package bytescan

import (
	"github.com/coregx/bytescan/scalar"
	"github.com/coregx/bytescan/simd"
	"github.com/coregx/bytescan/span"
)

// dispatch routes to the best available scanner for needle.Len(), resolved
// once per call rather than cached in a table, since the only inputs to the
// decision (needle length, and inside simd.Find, package-level CPU-feature
// vars resolved at init) are already cheap to read. Needles shorter than 4
// bytes always go to the short-needle kernels regardless of what hardware
// is available; there is no vector kernel for them in this design.
func dispatch(haystack []byte, needle span.Needle) int {
	switch {
	case needle.Len() == 0:
		return 0
	case needle.Len() > len(haystack):
		return len(haystack)
	case needle.Len() < 4:
		return scalar.FindShort(haystack, needle.Bytes)
	default:
		return simd.Find(haystack, needle)
	}
}

// countDispatch is the counting half of dispatch: the single-byte counter
// has no length axis to dispatch on, so it goes straight to the
// vector counter (which itself falls back to scalar on platforms or sizes
// where vectorizing does not pay off).
func countDispatch(haystack []byte, c byte) int {
	return simd.CountByte(haystack, c)
}
