package stralg

import (
	"reflect"
	"testing"
)

func TestExactMatchersAgreeWithNaive(t *testing.T) {
	testCases := []struct {
		text, pattern string
		want          []int32
	}{
		{"aaaaa", "aa", []int32{0, 1, 2, 3}},
		{"aabaa", "aa", []int32{0, 3}},
		{"aabaa", "ab", []int32{1}},
		{"aabbaabaabbbabaabbbbababaabbbbbabbbbbababbbbabbbaa", "aaa", nil},
		{"acacacg", "aca", []int32{0, 2}},
		{"mississippi", "is", []int32{1, 4}},
		{"", "a", nil},
		{"abc", "", nil},
		{"abc", "abcd", nil},
		{"abc", "abc", []int32{0}},
	}

	matchers := map[string]func(text, pattern []byte) []int32{
		"naive": NaiveMatch,
		"kmp":   KMPMatch,
		"bmh":   BMHMatch,
		"z":     ZMatch,
	}

	for _, tc := range testCases {
		want := NaiveMatch([]byte(tc.text), []byte(tc.pattern))
		sortInt32(want)
		if !reflect.DeepEqual(want, tc.want) {
			t.Fatalf("NaiveMatch(%q,%q) = %v, want %v", tc.text, tc.pattern, want, tc.want)
		}

		for name, fn := range matchers {
			got := fn([]byte(tc.text), []byte(tc.pattern))
			sortInt32(got)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s(%q,%q) = %v, want %v", name, tc.text, tc.pattern, got, want)
			}
		}
	}
}

func TestComputeBorderArray(t *testing.T) {
	// "ababab": borders are 0,0,1,2,3,4.
	got := ComputeBorderArray([]byte("ababab"))
	want := []int32{0, 0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeBorderArray(ababab) = %v, want %v", got, want)
	}
}

func TestComputeExtendedBorderArray(t *testing.T) {
	// "aaaa": plain borders are 0,1,2,3; since pattern[border[i]] ==
	// pattern[i+1] in every case here, each collapses to its own
	// extended border, giving 0,0,0,3.
	got := ComputeExtendedBorderArray([]byte("aaaa"))
	want := []int32{0, 0, 0, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeExtendedBorderArray(aaaa) = %v, want %v", got, want)
	}
}

func TestComputeZArray(t *testing.T) {
	// "aabxaabxcaabxaabxay" worked example is longer than needed here;
	// a compact check against "aaaa" suffices: Z = [4,3,2,1].
	got := ComputeZArray([]byte("aaaa"))
	want := []int32{4, 3, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeZArray(aaaa) = %v, want %v", got, want)
	}
}
