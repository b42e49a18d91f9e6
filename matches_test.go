package bytescan

import (
	"reflect"
	"testing"

	"github.com/coregx/bytescan/span"
)

func TestForwardMatchesOverlapping(t *testing.T) {
	got := ForwardMatches([]byte("aaaaaaaa"), span.Simple([]byte("aaaa"))).All()
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardMatches(aaaaaaaa, aaaa) = %v, want %v", got, want)
	}
}

func TestForwardMatchesNonOverlapping(t *testing.T) {
	got := ForwardMatches([]byte("abcabcabc"), span.Simple([]byte("abc"))).All()
	want := []int{0, 3, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardMatches(abcabcabc, abc) = %v, want %v", got, want)
	}
}

func TestForwardMatchesNoMatch(t *testing.T) {
	got := ForwardMatches([]byte("hello"), span.Simple([]byte("xyz"))).All()
	if len(got) != 0 {
		t.Errorf("ForwardMatches(hello, xyz) = %v, want empty", got)
	}
}

func TestForwardMatchesEmptyNeedle(t *testing.T) {
	got := ForwardMatches([]byte("hello"), span.Simple(nil)).All()
	want := []int{0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardMatches(hello, \"\") = %v, want %v", got, want)
	}
}

func TestForwardMatchesEmptyHaystack(t *testing.T) {
	got := ForwardMatches([]byte(""), span.Simple([]byte("a"))).All()
	if len(got) != 0 {
		t.Errorf("ForwardMatches(\"\", a) = %v, want empty", got)
	}
}

func TestReverseMatchesIsForwardReversed(t *testing.T) {
	haystack := []byte("aaaaaaaa")
	needle := span.Simple([]byte("aaaa"))

	fwd := ForwardMatches(haystack, needle).All()
	rev := ReverseMatches(haystack, needle).All()

	if len(fwd) != len(rev) {
		t.Fatalf("forward has %d matches, reverse has %d", len(fwd), len(rev))
	}
	for i, pos := range rev {
		want := fwd[len(fwd)-1-i]
		if pos != want {
			t.Errorf("rev[%d] = %d, want %d", i, pos, want)
		}
	}
}

func TestReverseMatchesNoMatch(t *testing.T) {
	got := ReverseMatches([]byte("hello"), span.Simple([]byte("xyz"))).All()
	if len(got) != 0 {
		t.Errorf("ReverseMatches(hello, xyz) = %v, want empty", got)
	}
}

func TestMatchIterNextAfterExhaustion(t *testing.T) {
	it := ForwardMatches([]byte("ab"), span.Simple([]byte("ab")))
	pos, ok := it.Next()
	if !ok || pos != 0 {
		t.Fatalf("first Next() = (%d, %v), want (0, true)", pos, ok)
	}
	if _, ok := it.Next(); ok {
		t.Error("second Next() on exhausted iterator returned true")
	}
	if _, ok := it.Next(); ok {
		t.Error("third Next() on exhausted iterator returned true")
	}
}
