package stralg

// BuildSuffixTreeFromSA builds the same tree as BuildSuffixTreeNaive
// and BuildSuffixTreeMcCreight directly from a SuffixArray and its
// LCPArray, in O(n) time and without comparing suffixes against each
// other: SA order already tells us the left-to-right leaf order, and
// LCP tells us exactly how deep each new leaf's branch point is (the
// only text bytes read are the first edge characters insertChild uses
// to keep siblings ordered). Grounded on
// the classic LCP-array-to-tree construction (Abouelhoda, Kurtz &
// Ohlebusch) that spec.md §4.6 names as the third construction route;
// verified by spec.md §8 property 5 against the other two builders.
//
// The algorithm keeps a stack mirroring the tree's current rightmost
// path, root at the bottom, strictly increasing in depth toward the
// top. For each suffix in SA order it pops the path back down to the
// node at string depth LCP[i] — splitting an edge to create that node
// if it isn't already explicit — and attaches a new leaf there.
func BuildSuffixTreeFromSA(sa *SuffixArray, lcp LCPArray) *SuffixTree {
	text := sa.text
	n := int32(len(text))
	st := newSuffixTreeSkeleton(text)
	root := st.root

	leaf0 := st.newNode(root, sa.SA[0], n, true, sa.SA[0])
	st.insertChild(root, leaf0)
	stack := []int32{root, leaf0}

	for i := 1; i < len(sa.SA); i++ {
		d := lcp[i]

		var lastPopped int32 = noNode
		for len(stack) > 1 && st.nodes[stack[len(stack)-1]].depth > d {
			lastPopped = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}

		top := stack[len(stack)-1]
		var parent int32
		if st.nodes[top].depth == d {
			parent = top
		} else {
			parent = st.splitEdge(lastPopped, d-st.nodes[top].depth)
			stack = append(stack, parent)
		}

		leaf := st.newNode(parent, sa.SA[i]+d, n, true, sa.SA[i])
		st.insertChild(parent, leaf)
		stack = append(stack, leaf)
	}

	return st
}
