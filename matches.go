package bytescan

import "github.com/coregx/bytescan/span"

// MatchIter is a lazy, restartable sequence of match positions, built by
// repeatedly invoking Find on the remainder of the haystack and advancing
// the cursor by one byte after every hit. This is deliberately
// overlap-preserving, not skip-by-needle-length, so "aaaa" against
// "aaaaaaaa" yields every overlapping start position, not just the
// non-overlapping ones.
//
// MatchIter holds no buffer of its own; each Next call runs one Find over a
// sub-slice of the original haystack, so construction is O(1) and a
// partially-consumed iterator can be abandoned freely.
type MatchIter struct {
	haystack []byte
	needle   span.Needle
	cursor   int
	done     bool
}

// ForwardMatches returns an iterator over every (possibly overlapping)
// start position of needle in haystack, left to right.
func ForwardMatches(haystack []byte, needle span.Needle) *MatchIter {
	return &MatchIter{haystack: haystack, needle: needle}
}

// Next returns the next match position and true, or (0, false) once the
// haystack is exhausted. An empty needle yields exactly one match, at
// index 0, then stops; advancing by 1 from there would otherwise loop
// forever re-matching the empty needle at every remaining position.
func (it *MatchIter) Next() (int, bool) {
	if it.done || it.cursor > len(it.haystack) {
		return 0, false
	}
	if it.needle.Len() == 0 {
		if it.cursor > 0 {
			it.done = true
			return 0, false
		}
		it.done = true
		return 0, true
	}

	remainder := it.haystack[it.cursor:]
	pos := Find(remainder, it.needle)
	if pos == len(remainder) {
		it.done = true
		return 0, false
	}

	match := it.cursor + pos
	it.cursor = match + 1
	return match, true
}

// All drains the iterator into a slice. Convenience for callers that do not
// need laziness.
func (it *MatchIter) All() []int {
	var out []int
	for {
		pos, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
}

// ReverseMatchIter enumerates the same positions as MatchIter but from the
// last match to the first. The core engine only ever finds forward, so the
// reverse variant is built by running the forward enumeration to completion
// once and then replaying it back to front: lazy in the sense that nothing
// is computed until the first Next call, but not incremental the way the
// forward iterator is.
type ReverseMatchIter struct {
	positions []int
	loaded    bool
	haystack  []byte
	needle    span.Needle
	next      int
}

// ReverseMatches returns an iterator over every match position of needle in
// haystack, right to left.
func ReverseMatches(haystack []byte, needle span.Needle) *ReverseMatchIter {
	return &ReverseMatchIter{haystack: haystack, needle: needle}
}

// Next returns the next (going backward) match position and true, or
// (0, false) once exhausted.
func (it *ReverseMatchIter) Next() (int, bool) {
	if !it.loaded {
		it.positions = ForwardMatches(it.haystack, it.needle).All()
		it.next = len(it.positions) - 1
		it.loaded = true
	}
	if it.next < 0 {
		return 0, false
	}
	pos := it.positions[it.next]
	it.next--
	return pos, true
}

// All drains the iterator into a slice.
func (it *ReverseMatchIter) All() []int {
	var out []int
	for {
		pos, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
}
