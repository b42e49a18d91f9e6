package bytescan

import (
	"bytes"
	"crypto/rand"
	"math"
	"strings"
	"testing"

	"github.com/coregx/bytescan/span"
)

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"cad_in_abracadabra", "abracadabra", "cad", 4},
		{"miss", "abracadabra", "xyz", 11},
		{"overlapping_aaaa", "aaaaaaaa", "aaaa", 0},
		{"fox", "the quick brown fox jumps over the lazy dog", "fox", 16},
		{"empty_haystack_and_needle", "", "", 0},
		{"needle_longer_than_haystack", "abc", "abcd", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindBytes([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("Find(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestFindLargeHaystack(t *testing.T) {
	haystack := bytes.Repeat([]byte{'x'}, 40*1024)
	haystack = append(haystack, []byte("needle")...)
	haystack = append(haystack, bytes.Repeat([]byte{'y'}, 40*1024)...)
	got := FindBytes(haystack, []byte("needle"))
	if got != 40*1024 {
		t.Errorf("Find large haystack = %d, want %d", got, 40*1024)
	}
}

func TestFindEmptyNeedleAlwaysZero(t *testing.T) {
	for _, h := range []string{"", "a", "hello world"} {
		got := FindBytes([]byte(h), nil)
		if got != 0 {
			t.Errorf("Find(%q, \"\") = %d, want 0", h, got)
		}
	}
}

func TestFindBoundaryHaystackSizes(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64}
	needleLens := []int{1, 2, 3, 4, 5, 8}
	for _, size := range sizes {
		for _, nlen := range needleLens {
			if nlen > size {
				continue
			}
			h := make([]byte, size)
			for i := range h {
				h[i] = 'x'
			}
			needle := bytes.Repeat([]byte{'N'}, nlen)
			pos := size - nlen
			copy(h[pos:], needle)
			got := FindBytes(h, needle)
			if got != pos {
				t.Errorf("size=%d nlen=%d: Find = %d, want %d", size, nlen, got, pos)
			}
		}
	}
}

// FuzzFind checks Find against the bytes.Index oracle on arbitrary inputs,
// seeded with the scenario table above plus the usual edge cases.
func FuzzFind(f *testing.F) {
	f.Add([]byte("abracadabra"), []byte("cad"))
	f.Add([]byte("abracadabra"), []byte("xyz"))
	f.Add([]byte("aaaaaaaa"), []byte("aaaa"))
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("abc"), []byte("abcd"))
	f.Add([]byte(""), []byte("x"))
	f.Add([]byte("x"), []byte(""))
	f.Add(make([]byte, 100), []byte("pattern"))
	f.Add([]byte{0, 1, 2, 3, 255}, []byte{2, 3})

	f.Fuzz(func(t *testing.T, haystack, needle []byte) {
		got := FindBytes(haystack, needle)
		want := bytes.Index(haystack, needle)
		if want == -1 {
			want = len(haystack)
		}
		if got != want {
			t.Errorf("Find(%v, %v) = %d, want %d", haystack, needle, got, want)
		}
	})
}

// FuzzCountByte checks CountByte against bytes.Count on a single-byte needle.
func FuzzCountByte(f *testing.F) {
	f.Add([]byte("banana"), byte('a'))
	f.Add([]byte(""), byte('x'))
	f.Add(make([]byte, 1000), byte(0))
	f.Add([]byte{0, 1, 2, 3, 255}, byte(255))

	f.Fuzz(func(t *testing.T, haystack []byte, c byte) {
		got := CountByte(haystack, c)
		want := bytes.Count(haystack, []byte{c})
		if got != want {
			t.Errorf("CountByte(%v, %v) = %d, want %d", haystack, c, got, want)
		}
	})
}

func TestCountByteScenarios(t *testing.T) {
	if got := CountByte([]byte("banana"), 'a'); got != 3 {
		t.Errorf("CountByte = %d, want 3", got)
	}
}

func TestCountByteUniformRandom(t *testing.T) {
	const size = 1 << 20
	buf := make([]byte, size)
	_, _ = rand.Read(buf)

	got := CountByte(buf, 0)
	expected := float64(size) / 256
	sigma := math.Sqrt(expected * (1 - 1.0/256))
	if math.Abs(float64(got)-expected) > 4*sigma {
		t.Errorf("CountByte(random 1MiB, 0) = %d, expected within 4 sigma of %f (sigma=%f)", got, expected, sigma)
	}
}

func TestNewNeedleRejectsBadAnomalyOffset(t *testing.T) {
	if _, err := span.NewNeedle([]byte("abcd"), 1); err == nil {
		t.Error("expected error for anomaly offset placing window past needle end")
	}
	if _, err := span.NewNeedle([]byte("abcd"), -1); err == nil {
		t.Error("expected error for negative anomaly offset")
	}
}

func TestFindWithCustomAnomalyOffset(t *testing.T) {
	haystack := []byte(strings.Repeat("filler", 50) + "zzz-rare-marker-zzz" + strings.Repeat("filler", 50))
	needle := []byte("zzz-rare-marker-zzz")
	n, err := span.NewNeedle(needle, 4) // anchor on "rare"
	if err != nil {
		t.Fatal(err)
	}
	got := Find(haystack, n)
	want := bytes.Index(haystack, needle)
	if got != want {
		t.Errorf("Find with custom anomaly offset = %d, want %d", got, want)
	}
}
