package stralg

// MatchIterator exposes SuffixArray.Range through the uniform
// MatchIterator façade: every suffix in [lo,hi) is one occurrence of
// pattern.
func (sa *SuffixArray) MatchIterator(pattern []byte) MatchIterator {
	if len(pattern) == 0 {
		return newSlicePositionIterator(nil)
	}
	lo, hi := sa.Range(pattern)
	positions := make([]int32, 0, hi-lo)
	for i := lo; i < hi; i++ {
		positions = append(positions, sa.SA[i])
	}
	return newSlicePositionIterator(positions)
}

// MatchIterator exposes SuffixTree.MatchPositions through the uniform
// MatchIterator façade.
func (st *SuffixTree) MatchIterator(pattern []byte) MatchIterator {
	return newSlicePositionIterator(st.MatchPositions(pattern))
}

// ApproxMatchIterator exposes SuffixTree.ApproxMatch through the
// uniform ApproxMatchIterator façade.
func (st *SuffixTree) ApproxMatchIterator(pattern []byte, maxEdits int32) ApproxMatchIterator {
	return &stApproxMatchIterator{matches: st.ApproxMatch(pattern, maxEdits), idx: -1}
}

// MatchIterator exposes BWTIndex.ExactMatch through the uniform
// MatchIterator façade.
func (b *BWTIndex) MatchIterator(pattern []byte) MatchIterator {
	return newSlicePositionIterator(b.ExactMatch(pattern))
}

// ApproxMatchIterator exposes BWTIndex.ApproxMatch through the uniform
// ApproxMatchIterator façade.
func (b *BWTIndex) ApproxMatchIterator(pattern []byte, maxEdits int32) ApproxMatchIterator {
	return &bwtApproxMatchIterator{matches: b.ApproxMatch(pattern, maxEdits), idx: -1}
}
