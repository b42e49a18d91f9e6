// Package span defines the data model shared by every byte-search backend:
// an immutable view over a byte range and a needle descriptor carrying the
// anomaly offset used by the general scalar scanner's prefilter.
//
// A Go slice already is a (pointer, length) pair with no ownership of the
// underlying array, so there is no separate "byte-span" type here: []byte
// plays that role directly. Needle exists because the anomaly offset has to
// travel alongside the bytes.
package span

import "fmt"

// Needle is a byte pattern to search for, plus the anomaly offset the
// general scalar scanner (scalar.General) uses to anchor its 4-byte
// prefilter window.
//
// The zero value (empty Bytes, AnomalyOffset 0) denotes the empty needle,
// which by convention always matches at index 0.
type Needle struct {
	Bytes []byte

	// AnomalyOffset is the byte index within Bytes where the 4-byte
	// prefilter window begins. Unused for needles shorter than 4 bytes.
	// Callers that do not care may leave it at 0.
	AnomalyOffset int
}

// NewNeedle validates and constructs a Needle. It enforces the invariant
// from the data model: when len(b) >= 4, anomalyOffset+4 must not exceed
// len(b). Needles shorter than 4 bytes ignore anomalyOffset entirely, so any
// value is accepted for them.
func NewNeedle(b []byte, anomalyOffset int) (Needle, error) {
	if anomalyOffset < 0 {
		return Needle{}, &InputError{Field: "AnomalyOffset", Reason: "must be non-negative"}
	}
	if len(b) >= 4 && anomalyOffset+4 > len(b) {
		return Needle{}, &InputError{Field: "AnomalyOffset", Reason: fmt.Sprintf("offset %d + 4 exceeds needle length %d", anomalyOffset, len(b))}
	}
	return Needle{Bytes: b, AnomalyOffset: anomalyOffset}, nil
}

// Simple wraps b in a Needle with anomaly offset 0, matching the needle
// prefix directly. This is what callers who "do not care" (spec's phrase)
// should reach for.
func Simple(b []byte) Needle {
	return Needle{Bytes: b, AnomalyOffset: 0}
}

// Len returns the needle length.
func (n Needle) Len() int { return len(n.Bytes) }

// Key returns the 4-byte anomaly window. Panics if Len() < 4; callers must
// check Len() first, the same precondition the general scanner documents.
func (n Needle) Key() [4]byte {
	if n.Len() < 4 {
		panic("span: Key requires a needle of length >= 4")
	}
	var k [4]byte
	copy(k[:], n.Bytes[n.AnomalyOffset:n.AnomalyOffset+4])
	return k
}

// InputError reports a precondition violation at the API boundary, a
// caller-side bug per the engine's error-handling design (malformed input is
// rejected before any memory is touched, never a silent undefined read).
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("bytescan: invalid %s: %s", e.Field, e.Reason)
}
