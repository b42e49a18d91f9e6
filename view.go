package bytescan

import (
	"bytes"
	"hash/maphash"

	"github.com/coregx/bytescan/span"
)

// NotFound is View's "no match" sentinel, the conventional Go equivalent of
// a reserved maximum value: View translates this to and from the engine's
// own sentinel (len(haystack)) at the boundary.
const NotFound = -1

// View is a borrowed, read-only range of bytes with the surface of a
// standard string-view type: construction, slicing, comparison, hashing,
// and substring search. It owns nothing and allocates nothing except the
// string copy String returns; every other operation either forwards to the search engine or to a straight
// bytes.Compare/bytes.Equal. Its only job is the sentinel translation and a
// convenient Go-shaped API, not any new algorithm.
type View struct {
	b []byte
}

// NewView borrows b; the caller guarantees b is not mutated while any View
// over it is in use.
func NewView(b []byte) View { return View{b: b} }

// Bytes returns the underlying byte range. The caller must not mutate it.
func (v View) Bytes() []byte { return v.b }

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.b) }

// Find returns the index of the first occurrence of sub in v, or NotFound.
func (v View) Find(sub []byte) int {
	i := Find(v.b, span.Simple(sub))
	if i == len(v.b) && len(sub) > 0 {
		return NotFound
	}
	return i
}

// Contains reports whether sub occurs anywhere in v.
func (v View) Contains(sub []byte) bool {
	return v.Find(sub) != NotFound
}

// HasPrefix reports whether v begins with prefix.
func (v View) HasPrefix(prefix []byte) bool {
	return len(prefix) <= len(v.b) && bytes.Equal(v.b[:len(prefix)], prefix)
}

// HasSuffix reports whether v ends with suffix.
func (v View) HasSuffix(suffix []byte) bool {
	return len(suffix) <= len(v.b) && bytes.Equal(v.b[len(v.b)-len(suffix):], suffix)
}

// Sub returns the half-open sub-range [start, end) as a new View over the
// same backing bytes. Panics on an out-of-range or inverted range, the same
// way slicing a []byte does.
func (v View) Sub(start, end int) View {
	return View{b: v.b[start:end]}
}

// Equal reports whether v and other contain the same bytes.
func (v View) Equal(other View) bool {
	return bytes.Equal(v.b, other.b)
}

// Compare returns -1, 0, or +1 as v is lexically less than, equal to, or
// greater than other, matching bytes.Compare.
func (v View) Compare(other View) int {
	return bytes.Compare(v.b, other.b)
}

// viewHashSeed is process-lifetime-stable (maphash.Hash reseeds per
// process), matching the usual Go convention that a hash is only
// meaningful for comparisons within a single run, never persisted.
var viewHashSeed = maphash.MakeSeed()

// Hash returns a hash of v's bytes, stable for the lifetime of the process.
func (v View) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(viewHashSeed)
	h.Write(v.b)
	return h.Sum64()
}

// String returns a copy of v's bytes as a string.
func (v View) String() string {
	return string(v.b)
}
