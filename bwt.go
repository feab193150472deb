package stralg

// BWTIndex is a backward-search index: the Burrows-Wheeler transform
// of a sentineled text plus the C and Occ tables backward search walks
// against. Built once, queried many times via ExactMatch and
// ApproxMatch in bwtsearch.go. Grounded on stralg/bwt.c's
// init_bwt_table and bwt_t, adapted to Go's dense byte alphabet via
// RemapTable in place of the C original's fixed DNA alphabet.
type BWTIndex struct {
	remap *RemapTable
	sa    *SuffixArray // over the remapped, sentineled text
	bwt   []byte       // remapped codes, in BWT order
	C     []int32      // C[c] = count of codes < c across the whole text
	Occ   [][]int32    // Occ[c][i] = count of code c in bwt[0:i]
}

// BuildBWTIndex builds a backward-search index over text. text must
// not already contain a sentinel byte (0x00); one is appended
// internally, as it is for every other index in this package.
func BuildBWTIndex(text []byte) (*BWTIndex, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	rt := BuildRemapTable(text)
	remapped := rt.Remap(text)

	sa, err := BuildSuffixArraySkew(remapped[:len(text)])
	if err != nil {
		return nil, err
	}

	n := sa.Len()
	bwt := make([]byte, n)
	for i, pos := range sa.SA {
		if pos == 0 {
			bwt[i] = 0
		} else {
			bwt[i] = sa.text[pos-1]
		}
	}

	counts := make([]int32, rt.AlphabetSize)
	for _, code := range sa.text {
		counts[code]++
	}
	C := make([]int32, rt.AlphabetSize)
	for c := 1; c < rt.AlphabetSize; c++ {
		C[c] = C[c-1] + counts[c-1]
	}

	occ := make([][]int32, rt.AlphabetSize)
	for c := range occ {
		occ[c] = make([]int32, n+1)
	}
	for i := 0; i < n; i++ {
		for c := 0; c < rt.AlphabetSize; c++ {
			occ[c][i+1] = occ[c][i]
		}
		occ[bwt[i]][i+1]++
	}

	return &BWTIndex{remap: rt, sa: sa, bwt: bwt, C: C, Occ: occ}, nil
}

// Len returns n+1, the length of the sentineled indexed text.
func (b *BWTIndex) Len() int { return len(b.bwt) }
