package stralg

// BWTApproxMatch is one approximate occurrence found by backward
// search: its start offset, the edit count used, and the alignment as
// a left-to-right CIGAR string.
type BWTApproxMatch struct {
	Pos         int32
	Edits       int32
	Cigar       string
	MatchLength int32 // length of the aligned substring of the indexed text
}

// ExactMatch returns every occurrence of pattern in the indexed text
// via FM-index backward search: narrowing the [lo,hi) SA interval one
// pattern character at a time, right to left. Grounded on
// stralg/bwt.c's init_bwt_exact_match_iter.
func (b *BWTIndex) ExactMatch(pattern []byte) []int32 {
	if len(pattern) == 0 {
		return nil
	}
	mapped, ok := b.remap.RemapPattern(pattern)
	if !ok {
		return nil
	}

	lo, hi := 0, len(b.bwt)
	for i := len(mapped) - 1; i >= 0; i-- {
		c := mapped[i]
		lo = int(b.C[c]) + int(b.Occ[c][lo])
		hi = int(b.C[c]) + int(b.Occ[c][hi])
		if lo >= hi {
			return nil
		}
	}

	out := make([]int32, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, b.sa.SA[i])
	}
	return out
}

// bwtApproxFrame is one partial backward-search alignment: pattern
// positions patternPos+1..end have been consumed against SA interval
// [lo,hi), at a total cost of edits, via the alignment ops recorded
// so far (built right to left; reversed before use).
type bwtApproxFrame struct {
	lo, hi     int
	patternPos int
	edits      int32
	ops        []byte
}

// ApproxMatch finds every occurrence of pattern within edit distance
// maxEdits via backward search, extending the candidate interval one
// character at a time from the end of pattern toward its start, with
// an explicit stack of frames in place of recursion. Grounded on
// stralg/bwt.c's init_bwt_approx_match_iter / next_bwt_approx_match_iter
// push_edits/pop_edits frame stack; CIGAR strings are built with
// cigar.go's non-aliasing appendOp rather than the C original's shared
// cursor-offset buffer. As with STApproxMatch, a single occurrence may
// be reported more than once under different alignments within budget.
func (b *BWTIndex) ApproxMatch(pattern []byte, maxEdits int32) []BWTApproxMatch {
	if len(pattern) == 0 || maxEdits < 0 {
		return nil
	}
	mapped, ok := b.remap.RemapPattern(pattern)
	if !ok {
		return nil
	}

	var out []BWTApproxMatch
	stack := []bwtApproxFrame{{lo: 0, hi: len(b.bwt), patternPos: len(mapped) - 1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.patternPos < 0 {
			cigar := simplifyCigar(reverseOps(f.ops))
			matchLen := cigarMatchLength(f.ops)
			for i := f.lo; i < f.hi; i++ {
				out = append(out, BWTApproxMatch{Pos: b.sa.SA[i], Edits: f.edits, Cigar: cigar, MatchLength: matchLen})
			}
			continue
		}

		// Insertion: pattern has a character with no text counterpart;
		// the interval is untouched and patternPos still retreats.
		if f.edits+1 <= maxEdits {
			stack = append(stack, bwtApproxFrame{
				lo: f.lo, hi: f.hi, patternPos: f.patternPos - 1,
				edits: f.edits + 1, ops: appendOp(f.ops, 'I'),
			})
		}

		for c := 1; c < b.remap.AlphabetSize; c++ {
			newLo := int(b.C[c]) + int(b.Occ[c][f.lo])
			newHi := int(b.C[c]) + int(b.Occ[c][f.hi])
			if newLo >= newHi {
				continue
			}

			cost := int32(1)
			if byte(c) == mapped[f.patternPos] {
				cost = 0
			}
			if f.edits+cost <= maxEdits {
				stack = append(stack, bwtApproxFrame{
					lo: newLo, hi: newHi, patternPos: f.patternPos - 1,
					edits: f.edits + cost, ops: appendOp(f.ops, 'M'),
				})
			}
			if f.edits+1 <= maxEdits {
				stack = append(stack, bwtApproxFrame{
					lo: newLo, hi: newHi, patternPos: f.patternPos,
					edits: f.edits + 1, ops: appendOp(f.ops, 'D'),
				})
			}
		}
	}

	return out
}

// reverseOps returns ops reversed: approximate backward search builds
// its alignment from the end of pattern toward its start, so the raw
// op sequence must be flipped before it reads left to right.
func reverseOps(ops []byte) []byte {
	out := make([]byte, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = op
	}
	return out
}
