package stralg

// Search descends pattern through the tree from the root, matching
// each byte exactly. It returns the node reached — the exact node if
// pattern ends precisely on one, otherwise the child whose edge is
// partway matched — and whether every byte of pattern matched along
// some path. MatchPositions combines this with Leaves to recover every
// occurrence, per spec.md §4.4's search operation.
func (st *SuffixTree) Search(pattern []byte) (node int32, found bool) {
	node = st.root
	consumed := int32(0)
	for i := 0; i < len(pattern); i++ {
		if consumed == st.edgeLen(node) {
			child, ok := st.findChild(node, pattern[i])
			if !ok {
				return noNode, false
			}
			node, consumed = child, 1
			continue
		}
		if st.text[st.nodes[node].from+consumed] != pattern[i] {
			return noNode, false
		}
		consumed++
	}
	return node, true
}

// MatchPositions returns every start offset at which pattern occurs in
// the indexed text, unordered.
func (st *SuffixTree) MatchPositions(pattern []byte) []int32 {
	if len(pattern) == 0 {
		return nil
	}
	node, ok := st.Search(pattern)
	if !ok {
		return nil
	}
	return st.Leaves(node)
}

// STApproxMatch is one approximate occurrence of a pattern against an
// indexed text: its start offset, the number of edits the alignment
// used, and the alignment itself as a CIGAR string (M for a
// match/mismatch column, I for a pattern character with no text
// counterpart, D for a text character with no pattern counterpart).
type STApproxMatch struct {
	Pos         int32
	Edits       int32
	Cigar       string
	MatchLength int32 // length of the aligned substring of the indexed text
}

// stApproxFrame is one partial alignment: patternPos characters of
// pattern have been consumed to reach consumed characters into
// node's incoming edge, at a total cost of edits, via the alignment
// ops recorded so far.
type stApproxFrame struct {
	node       int32
	consumed   int32
	patternPos int32
	edits      int32
	ops        []byte
}

// ApproxMatch finds every occurrence of pattern within edit distance
// maxEdits, via an explicit stack of partial alignments rather than
// recursion — grounded on stralg/bwt.c's push_edits/pop_edits frame
// stack (init_bwt_approx_match_iter / next_bwt_approx_match_iter),
// adapted here to walk a suffix tree instead of a BWT interval and to
// build CIGAR strings with cigar.go's non-aliasing appendOp instead of
// the C original's shared cursor-offset buffer. A single occurrence
// may be reported more than once, under different alignments and edit
// counts, if more than one path within the edit budget reaches it;
// callers wanting only the best alignment per position should keep
// the minimum Edits seen per Pos.
func (st *SuffixTree) ApproxMatch(pattern []byte, maxEdits int32) []STApproxMatch {
	if len(pattern) == 0 || maxEdits < 0 {
		return nil
	}

	var out []STApproxMatch
	stack := []stApproxFrame{{node: st.root, consumed: st.edgeLen(st.root)}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.patternPos == int32(len(pattern)) {
			cigar := simplifyCigar(f.ops)
			matchLen := cigarMatchLength(f.ops)
			for _, label := range st.Leaves(f.node) {
				out = append(out, STApproxMatch{Pos: label, Edits: f.edits, Cigar: cigar, MatchLength: matchLen})
			}
			continue
		}

		if f.consumed == st.edgeLen(f.node) {
			c := st.nodes[f.node].firstChild
			for c != noNode {
				stack = st.pushSubstOrDelete(stack, f, c, 0, pattern, maxEdits)
				c = st.nodes[c].nextSibling
			}
		} else {
			stack = st.pushSubstOrDelete(stack, f, f.node, f.consumed, pattern, maxEdits)
		}

		// Insertion: consume a pattern character against no text at
		// all, staying at the exact same tree position.
		if f.edits+1 <= maxEdits {
			stack = append(stack, stApproxFrame{
				node: f.node, consumed: f.consumed,
				patternPos: f.patternPos + 1, edits: f.edits + 1,
				ops: appendOp(f.ops, 'I'),
			})
		}
	}

	return out
}

// pushSubstOrDelete pushes the match/mismatch and deletion
// continuations for consuming one more text character — the one
// edgeConsumed characters into edgeNode's incoming edge — against
// pattern[f.patternPos].
func (st *SuffixTree) pushSubstOrDelete(stack []stApproxFrame, f stApproxFrame, edgeNode, edgeConsumed int32, pattern []byte, maxEdits int32) []stApproxFrame {
	textChar := st.text[st.nodes[edgeNode].from+edgeConsumed]

	cost := int32(1)
	if textChar == pattern[f.patternPos] {
		cost = 0
	}
	if f.edits+cost <= maxEdits {
		stack = append(stack, stApproxFrame{
			node: edgeNode, consumed: edgeConsumed + 1,
			patternPos: f.patternPos + 1, edits: f.edits + cost,
			ops: appendOp(f.ops, 'M'),
		})
	}

	if f.edits+1 <= maxEdits {
		stack = append(stack, stApproxFrame{
			node: edgeNode, consumed: edgeConsumed + 1,
			patternPos: f.patternPos, edits: f.edits + 1,
			ops: appendOp(f.ops, 'D'),
		})
	}

	return stack
}
