package stralg

import (
	"reflect"
	"testing"
)

func TestBuildSuffixArraySkewMatchesNaive(t *testing.T) {
	texts := []string{
		"banana", "mississippi", "a", "", "aaaaa", "aabaa",
		"acacacg", "aabbaabaabbbabaabbbbababaabbbbbabbbbbababbbbabbbaa",
		"abababababab",
	}
	for _, text := range texts {
		naive, err := BuildSuffixArrayNaive([]byte(text))
		if err != nil {
			t.Fatal(err)
		}
		skew, err := BuildSuffixArraySkew([]byte(text))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(naive.SA, skew.SA) {
			t.Errorf("skew SA(%q) = %v, want %v", text, skew.SA, naive.SA)
		}
	}
}

func TestBuildSuffixArraySkewRejectsEmbeddedSentinel(t *testing.T) {
	if _, err := BuildSuffixArraySkew([]byte{'a', 0}); err != ErrSentinelByteInText {
		t.Fatalf("err = %v, want ErrSentinelByteInText", err)
	}
}

func TestBuildSuffixArraySkewTwoLetterAlphabet(t *testing.T) {
	// spec.md §8 boundary: "T random over an alphabet of 2".
	text := "0101100101101001011010010110100101101"
	naive, err := BuildSuffixArrayNaive([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	skew, err := BuildSuffixArraySkew([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(naive.SA, skew.SA) {
		t.Errorf("skew SA(%q) = %v, want %v", text, skew.SA, naive.SA)
	}
}
