package span

// byteFrequencies holds empirical frequency ranks for bytes in English text,
// source code and binary data; lower rank means rarer, and rarer bytes make
// better anomaly-offset anchors because they cut verification cost the most.
// Same approach as Rust's memchr crate.
var byteFrequencies = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// RarestByteOffset scans a needle of length >= 4 and returns the start of
// the 4-byte window centered on its rarest byte, clamped so the window stays
// inside the needle. It is an opt-in helper: nothing in this module calls it
// implicitly. The general scalar scanner uses whatever AnomalyOffset the
// caller's Needle carries (0 if built with Simple); the vector scanners gate
// on the needle's first 4 bytes and do not read AnomalyOffset.
//
// Panics if len(b) < 4.
func RarestByteOffset(b []byte) int {
	if len(b) < 4 {
		panic("span: RarestByteOffset requires a needle of length >= 4")
	}

	rarestIdx := 0
	rarestRank := byteFrequencies[b[0]]
	for i := 1; i < len(b); i++ {
		if r := byteFrequencies[b[i]]; r < rarestRank {
			rarestRank = r
			rarestIdx = i
		}
	}

	offset := rarestIdx - 1
	if offset < 0 {
		offset = 0
	}
	if maxOffset := len(b) - 4; offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
