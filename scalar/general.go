package scalar

import (
	"bytes"
	"encoding/binary"

	"github.com/coregx/bytescan/span"
)

// General is the scalar scanner for needles of length >= 5: it slides a
// 4-byte "anomaly" window across the haystack, and on a 32-bit equality hit
// verifies the needle's suffix (cheaper to rule out first, since it is
// usually the longer half) and then its prefix.
//
// Returns len(haystack) if the needle is not found. Preconditions (caller's
// responsibility, matching span.NewNeedle's validation): needle.Len() >= 5
// and needle.AnomalyOffset+4 <= needle.Len().
func General(haystack []byte, needle span.Needle) int {
	n := needle.Bytes
	nlen := len(n)
	hlen := len(haystack)
	anomaly := needle.AnomalyOffset

	if nlen > hlen {
		return hlen
	}

	key := binary.LittleEndian.Uint32(n[anomaly : anomaly+4])
	suffix := n[anomaly+4:]
	prefix := n[:anomaly]

	// cursor is the position of the anomaly window in the haystack; the
	// reported match index is cursor-anomaly. The window must stay fully
	// inside the haystack and the needle must still fit around it.
	lastCursor := hlen - (nlen - anomaly)
	for cursor := anomaly; cursor <= lastCursor; cursor++ {
		if binary.LittleEndian.Uint32(haystack[cursor:cursor+4]) != key {
			continue
		}
		matchStart := cursor - anomaly
		if !bytes.Equal(haystack[cursor+4:cursor+4+len(suffix)], suffix) {
			continue
		}
		if !bytes.Equal(haystack[matchStart:cursor], prefix) {
			continue
		}
		return matchStart
	}
	return hlen
}
