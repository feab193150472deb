package stralg

// LCPArray holds the longest-common-prefix lengths between
// lexicographically adjacent suffixes of a SuffixArray. Length n+2:
// LCP[0] and LCP[n+1] are sentinels (-1) for range queries; for
// 1 <= i <= n, LCP[i] = lcp(T[SA[i-1]..], T[SA[i]..]).
type LCPArray []int32

const lcpSentinel = -1

// BuildLCPArray computes LCP via Kasai's algorithm: walk the text in
// text order (not SA order) so the extension length l only ever
// decreases by one between consecutive steps, giving O(n) amortized
// character comparisons total. Grounded on
// xiles84-dnatools/lcs.go:computeLCP and stralg/suffix_array.c's
// compute_lcp, generalized here to emit the sentineled length-(n+2)
// array spec.md §3/§4.3 requires (the teacher and the C original both
// only sentinel one end).
func BuildLCPArray(sa *SuffixArray) LCPArray {
	n := len(sa.SA)
	isa := sa.Inverse()
	text := sa.text

	lcp := make(LCPArray, n+1)
	lcp[0] = lcpSentinel
	lcp[n] = lcpSentinel // LCP[n] has no successor suffix; sentinel per spec.md §3

	l := int32(0)
	for i := 0; i < n; i++ {
		j := isa[i]
		if j == 0 {
			continue // LCP[0] is always the sentinel, never overwritten
		}
		k := sa.SA[j-1]
		for int(i)+int(l) < n && int(k)+int(l) < n && text[int(i)+int(l)] == text[int(k)+int(l)] {
			l++
		}
		lcp[j] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}
