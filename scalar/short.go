// Package scalar implements the pure-Go byte-search kernels: the short-needle
// SWAR specialisations for needle lengths 1-4 (plus the single-byte counter)
// and the general scalar scanner for needle length >= 5. Every exported
// function returns len(haystack) on a miss, never -1, so callers compose
// these results directly with slicing without an intermediate "not found"
// branch.
//
// The SWAR technique (broadcast the needle byte into every lane of a uint64,
// XOR against an 8-byte load, and use the classic "haszero" bit trick to
// find a zero lane) generalizes to needle lengths 2 and 3 by combining
// several shifted single-byte indicator words instead of only matching one
// byte at a time. The length-4 kernel instead compares the four shifted
// 32-bit windows of each 8-byte load directly against the needle.
package scalar

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	lo7 = 0x7F7F7F7F7F7F7F7F
)

// haszero returns a word with the high bit of lane i set wherever the
// corresponding byte of v is zero. Standard bit trick (Hacker's Delight
// §6-1), in its exact per-lane form: adding 0x7F to the low 7 bits of each
// lane never carries into the next lane, so no lane is flagged by a borrow
// or carry from its neighbour.
func haszero(v uint64) uint64 {
	return ^(((v & lo7) + lo7) | v | lo7)
}

// laneMatch returns, for each of the 8 byte lanes of an 8-byte load, a word
// with the lane's high bit set wherever that lane equals b.
func laneMatch(word uint64, b byte) uint64 {
	return haszero(word ^ uint64(b)*lo8)
}

// CountByte returns the number of indices i such that haystack[i] == c,
// satisfying invariant 5 of the data model. It folds 8 bytes per iteration
// and uses bits.OnesCount64 on the haszero indicator word: each matching
// lane contributes exactly one set bit, so popcount equals the match count
// in that chunk.
func CountByte(haystack []byte, c byte) int {
	n := len(haystack)
	count := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		count += bits.OnesCount64(laneMatch(word, c))
	}
	for ; i < n; i++ {
		if haystack[i] == c {
			count++
		}
	}
	return count
}

// Find1 returns the index of the first occurrence of c in haystack, or
// len(haystack) if absent.
func Find1(haystack []byte, c byte) int {
	n := len(haystack)
	i := 0
	for ; i+8 <= n; i += 8 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		if m := laneMatch(word, c); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == c {
			return i
		}
	}
	return n
}

// Find2 returns the index of the first occurrence of the 2-byte needle
// {n0, n1} in haystack, or len(haystack) if absent.
//
// Per 8-byte load, 7 candidate start offsets (0..6) are evaluated at once:
// a lane-match word is computed independently for n0 and for n1, the n1
// word is shifted right by one lane (8 bits) so lane i holds whether
// haystack[i+1] == n1, and the two are ANDed together. The result's lane i
// holds the match indicator for start offset i. Stride is 7, not 8, because
// offset 7 would need haystack[8], one byte past this load.
func Find2(haystack []byte, n0, n1 byte) int {
	n := len(haystack)
	if n < 2 {
		return n
	}
	i := 0
	for ; i+8 <= n; i += 7 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		m0 := laneMatch(word, n0)
		m1 := laneMatch(word, n1) >> 8
		combined := m0 & m1 & 0x00FFFFFFFFFFFFFF // lane 7 undefined (needs byte i+8); mask it off
		if combined != 0 {
			return i + bits.TrailingZeros64(combined)/8
		}
	}
	for ; i+1 < n; i++ {
		if haystack[i] == n0 && haystack[i+1] == n1 {
			return i
		}
	}
	return n
}

// Find3 returns the index of the first occurrence of the 3-byte needle
// {n0, n1, n2} in haystack, or len(haystack) if absent.
//
// Same construction as Find2 with a third shifted lane-match word ANDed in;
// 6 candidate offsets per load, stride 6.
func Find3(haystack []byte, n0, n1, n2 byte) int {
	n := len(haystack)
	if n < 3 {
		return n
	}
	i := 0
	for ; i+8 <= n; i += 6 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		m0 := laneMatch(word, n0)
		m1 := laneMatch(word, n1) >> 8
		m2 := laneMatch(word, n2) >> 16
		combined := m0 & m1 & m2 & 0x0000FFFFFFFFFFFF // lanes 6,7 undefined
		if combined != 0 {
			return i + bits.TrailingZeros64(combined)/8
		}
	}
	for ; i+2 < n; i++ {
		if haystack[i] == n0 && haystack[i+1] == n1 && haystack[i+2] == n2 {
			return i
		}
	}
	return n
}

// Find4 returns the index of the first occurrence of the 4-byte needle in
// haystack, or len(haystack) if absent.
//
// Implemented by directly extracting the four shifted 32-bit windows from
// one 8-byte load and comparing each against the needle as a uint32. This
// is algebraically equivalent to swizzling the load into two halves and
// folding through a 16-entry lookup table, and easier to verify by
// inspection without a lookup table to get wrong.
func Find4(haystack []byte, needle [4]byte) int {
	n := len(haystack)
	if n < 4 {
		return n
	}
	want := binary.LittleEndian.Uint32(needle[:])
	i := 0
	for ; i+8 <= n; i += 4 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		w0 := uint32(word)
		w1 := uint32(word >> 8)
		w2 := uint32(word >> 16)
		w3 := uint32(word >> 24)
		switch {
		case w0 == want:
			return i
		case w1 == want:
			return i + 1
		case w2 == want:
			return i + 2
		case w3 == want:
			return i + 3
		}
	}
	for ; i+4 <= n; i++ {
		if haystack[i] == needle[0] && haystack[i+1] == needle[1] &&
			haystack[i+2] == needle[2] && haystack[i+3] == needle[3] {
			return i
		}
	}
	return n
}

// FindShort dispatches to the Find1..Find4 kernel matching len(needle).
// Panics if needle length is 0 or > 4; callers (scalar.Find and the
// top-level dispatcher) are responsible for only calling this for
// needles of length 1-4.
func FindShort(haystack, needle []byte) int {
	switch len(needle) {
	case 1:
		return Find1(haystack, needle[0])
	case 2:
		return Find2(haystack, needle[0], needle[1])
	case 3:
		return Find3(haystack, needle[0], needle[1], needle[2])
	case 4:
		var key [4]byte
		copy(key[:], needle)
		return Find4(haystack, key)
	default:
		panic("scalar: FindShort requires a needle of length 1-4")
	}
}
