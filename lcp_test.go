package stralg

import (
	"reflect"
	"testing"
)

func TestBuildLCPArray(t *testing.T) {
	sa, err := BuildSuffixArrayNaive([]byte("banana"))
	if err != nil {
		t.Fatal(err)
	}
	lcp := BuildLCPArray(sa)

	// SA("banana$") = [6,5,3,1,0,4,2]; adjacent LCPs (sentineled at
	// both ends per spec.md §3) are 0,1,3,0,0,2 between consecutive
	// pairs, i.e. LCP[1..6].
	want := LCPArray{-1, 0, 1, 3, 0, 0, 2, -1}
	if !reflect.DeepEqual(lcp, want) {
		t.Errorf("LCP(banana) = %v, want %v", lcp, want)
	}
}

func TestBuildLCPArrayAgainstBruteForce(t *testing.T) {
	texts := []string{"banana", "mississippi", "aaaaa", "acacacg", "a", ""}
	for _, text := range texts {
		sa, err := BuildSuffixArrayNaive([]byte(text))
		if err != nil {
			t.Fatal(err)
		}
		lcp := BuildLCPArray(sa)
		n := len(sa.SA)

		if lcp[0] != lcpSentinel || lcp[n] != lcpSentinel {
			t.Fatalf("%q: LCP boundary sentinels = %d,%d", text, lcp[0], lcp[n])
		}
		for i := 1; i < n; i++ {
			want := bruteLCP(sa.text[sa.SA[i-1]:], sa.text[sa.SA[i]:])
			if lcp[i] != want {
				t.Errorf("%q: LCP[%d] = %d, want %d", text, i, lcp[i], want)
			}
		}
	}
}

func bruteLCP(a, b []byte) int32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var i int32
	for int(i) < n && a[i] == b[i] {
		i++
	}
	return i
}
