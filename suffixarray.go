package stralg

import (
	"bytes"
	"sort"
)

// SuffixArray is the sorted permutation of every suffix start offset
// of an indexed string T$ (T with the implicit sentinel appended).
// SA[0] is always len(T), the sentinel-only suffix.
type SuffixArray struct {
	text []byte // T$, owned, never mutated after construction
	SA   []int32
	isa  []int32 // lazily computed inverse, ISA[SA[i]] = i
}

// Text returns the sentineled string the array indexes. Callers must
// not mutate the returned slice.
func (sa *SuffixArray) Text() []byte { return sa.text }

// Len returns n+1, the length of the sentineled string (and of SA).
func (sa *SuffixArray) Len() int { return len(sa.SA) }

// BuildSuffixArrayNaive sorts every suffix start offset by full
// lexicographic byte comparison. O(n^2 log n) worst case; this
// construction exists as a correctness oracle for BuildSuffixArraySkew,
// grounded on stralg/suffix_array.c's qsort_sa_construction, never as
// a production path.
func BuildSuffixArrayNaive(text []byte) (*SuffixArray, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	t := appendSentinel(text)
	n := len(t)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.Slice(idx, func(i, j int) bool {
		return bytes.Compare(t[idx[i]:], t[idx[j]:]) < 0
	})
	return &SuffixArray{text: t, SA: idx}, nil
}

// Inverse returns ISA with ISA[SA[i]] = i, computing it lazily on
// first use and caching the result.
func (sa *SuffixArray) Inverse() []int32 {
	if sa.isa != nil {
		return sa.isa
	}
	isa := make([]int32, len(sa.SA))
	for i, p := range sa.SA {
		isa[p] = int32(i)
	}
	sa.isa = isa
	return isa
}

// Range returns the half-open [lo, hi) interval of SA whose suffixes
// all have pattern as a prefix, via two binary searches. Grounded on
// suffix_array.c's lower_bound_search, generalized to also return the
// upper bound (the original only ever returns the lower one).
func (sa *SuffixArray) Range(pattern []byte) (lo, hi int) {
	n := len(sa.SA)
	lo = sort.Search(n, func(i int) bool {
		return bytes.Compare(suffixAt(sa.text, sa.SA[i]), pattern) >= 0
	})
	hi = sort.Search(n, func(i int) bool {
		s := suffixAt(sa.text, sa.SA[i])
		if len(s) > len(pattern) {
			s = s[:len(pattern)]
		}
		return bytes.Compare(s, pattern) > 0
	})
	return lo, hi
}

func suffixAt(text []byte, pos int32) []byte {
	return text[pos:]
}
