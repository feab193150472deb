package stralg

// fastScan descends from node for exactly length characters of text
// starting at textPos, without ever comparing bytes: every character
// skipped here is already known (via a suffix link) to exist along
// this path, so only edge lengths need counting — McCreight's
// "skip/count" trick, the source of the algorithm's linear time
// bound. It either lands exactly on a node (edgeConsumed == 0) or
// mid-edge on child, edgeConsumed characters into its incoming edge;
// callers that need an explicit node there must split it themselves.
func (st *SuffixTree) fastScan(node int32, length int32, textPos int32) (landNode int32, edgeConsumed int32, newTextPos int32) {
	for length > 0 {
		child, ok := st.findChild(node, st.text[textPos])
		if !ok {
			panic("stralg: fastScan lost a path guaranteed to exist")
		}
		el := st.edgeLen(child)
		if length < el {
			return child, length, textPos + length
		}
		node = child
		textPos += el
		length -= el
	}
	return node, 0, textPos
}

// BuildSuffixTreeMcCreight builds the same tree as BuildSuffixTreeNaive
// in O(n) time using suffix links: after inserting suffix i-1 with
// head node head_prev (string depth headDepth) and parent u, the first
// headDepth-1 characters of suffix i are already known to exist along
// the path from v = suffixLink(u) (depth(v) is read directly off v,
// which is correct whether u is the root or not — root's own suffix
// link is itself, at depth 0, so no special-cased root branch is
// needed beyond the unavoidable case where head_prev IS the root
// itself, for which there is no prior match to retrace at all).
// Grounded on McCreight's algorithm as presented in the stralg
// performance notes (performance/suffix_tree_construction.c) and
// spec.md §4.5; verified by spec.md §8 property 5 against
// BuildSuffixTreeNaive and BuildSuffixTreeFromSA.
func BuildSuffixTreeMcCreight(text []byte) (*SuffixTree, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	t := appendSentinel(text)
	st := newSuffixTreeSkeleton(t)
	n := int32(len(t))
	root := st.root

	head, headDepth := st.descendAndInsert(root, 0, 0, 0)

	for i := int32(1); i < n; i++ {
		if head == root {
			// Suffix i-1 diverged from every earlier suffix at its very
			// first character, so nothing about suffix i's prefix is
			// known yet; there is no suffix link to exploit.
			newHead, newHeadDepth := st.descendAndInsert(root, 0, i, i)
			head, headDepth = newHead, newHeadDepth
			continue
		}

		u := st.nodes[head].parent
		v := st.nodes[u].suffixLink
		depthV := st.nodes[v].depth
		gammaLen := headDepth - 1 - depthV
		textPos := i + depthV

		landNode, edgeConsumed, newTextPos := st.fastScan(v, gammaLen, textPos)
		if edgeConsumed > 0 && edgeConsumed < st.edgeLen(landNode) {
			landNode = st.splitEdge(landNode, edgeConsumed)
		}
		if st.nodes[head].suffixLink == noNode {
			st.nodes[head].suffixLink = landNode
		}

		newHead, newHeadDepth := st.descendAndInsert(landNode, st.edgeLen(landNode), newTextPos, i)
		head, headDepth = newHead, newHeadDepth
	}

	return st, nil
}
