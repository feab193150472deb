package stralg

// BuildSuffixArraySkew constructs the suffix array of text in linear
// time using the skew (DC3) algorithm: partition suffix start
// positions by (start mod 3), radix-sort and name the mod-1/mod-2
// triples, recurse on the name sequence if names collide, induce the
// mod-0 order from the recursed order, then merge the two classes
// with a constant-time comparator. Grounded on the classic
// Kärkkäinen–Sanders skew construction; spec.md §4.2 names this
// algorithm explicitly as the module's linear-time suffix-array
// construction (distinct from the teacher's SAIS construction, which
// this module does not reuse because SAIS and DC3 are different
// linear-time algorithms with different recursion structure).
func BuildSuffixArraySkew(text []byte) (*SuffixArray, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	t := appendSentinel(text)
	n := len(t)

	s := make([]int32, n)
	for i, b := range t {
		s[i] = int32(b)
	}

	sa := make([]int32, n)
	dc3(s, sa, n, 256)
	return &SuffixArray{text: t, SA: sa}, nil
}

// leq2 lexicographically compares pairs (a1,a2) and (b1,b2).
func leq2(a1, a2, b1, b2 int32) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

// leq3 lexicographically compares triples (a1,a2,a3) and (b1,b2,b3).
func leq3(a1, a2, a3, b1, b2, b3 int32) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}

// radixPass stably sorts the index set a by the key r[a[i]+offset],
// where keys range over [0, K). It is the workhorse of dc3: every
// triple is sorted one character at a time, least significant first.
func radixPass(a []int32, r []int32, offset int, K int32) []int32 {
	n := len(a)
	b := make([]int32, n)
	count := make([]int32, K+1)
	for i := 0; i < n; i++ {
		count[r[int(a[i])+offset]+1]++
	}
	for i := int32(1); i <= K; i++ {
		count[i] += count[i-1]
	}
	for i := 0; i < n; i++ {
		key := r[int(a[i])+offset]
		b[count[key]] = a[i]
		count[key]++
	}
	return b
}

// dc3 writes the suffix array of s[:n] into SA. Only s[:n] is read:
// dc3 copies it into sPad, which carries three trailing zero entries
// as sentinel padding so every triple read past the last real
// position is well defined. K is the alphabet size of
// s (every value in s lies in [0, K)).
func dc3(s []int32, SA []int32, n int, K int32) {
	switch {
	case n == 0:
		return
	case n == 1:
		SA[0] = 0
		return
	case n == 2:
		if s[0] <= s[1] {
			SA[0], SA[1] = 0, 1
		} else {
			SA[0], SA[1] = 1, 0
		}
		return
	}

	n0 := (n + 2) / 3
	n1 := (n + 1) / 3
	n2 := n / 3
	n02 := n0 + n2

	sPad := make([]int32, n+3)
	copy(sPad, s[:n])

	s12 := make([]int32, n02+3)
	SA12 := make([]int32, n02+3)
	s0 := make([]int32, n0)

	// positions i in [0,n) with i%3 != 0, plus (n0-n1) virtual
	// trailing positions so the mod-1 bucket always fills exactly n0
	// slots regardless of how n divides by 3.
	j := 0
	for i := 0; i < n+(n0-n1); i++ {
		if i%3 != 0 {
			s12[j] = int32(i)
			j++
		}
	}

	sorted := radixPass(s12[:n02], sPad, 2, K)
	sorted = radixPass(sorted, sPad, 1, K)
	sorted = radixPass(sorted, sPad, 0, K)
	copy(SA12[:n02], sorted)

	name := int32(0)
	c0, c1, c2 := int32(-1), int32(-1), int32(-1)
	for i := 0; i < n02; i++ {
		p := int(SA12[i])
		if sPad[p] != c0 || sPad[p+1] != c1 || sPad[p+2] != c2 {
			name++
			c0, c1, c2 = sPad[p], sPad[p+1], sPad[p+2]
		}
		if SA12[i]%3 == 1 {
			s12[p/3] = name
		} else {
			s12[p/3+n0] = name
		}
	}

	if int(name) < n02 {
		dc3(s12, SA12, n02, name+1)
		for i := 0; i < n02; i++ {
			s12[SA12[i]] = int32(i + 1)
		}
	} else {
		for i := 0; i < n02; i++ {
			SA12[s12[i]-1] = int32(i)
		}
	}

	j = 0
	for i := 0; i < n02; i++ {
		if int(SA12[i]) < n0 {
			s0[j] = 3 * SA12[i]
			j++
		}
	}
	SA0 := radixPass(s0, sPad, 0, K)

	// merge the mod-0 suffixes (SA0) with the mod-1/mod-2 suffixes
	// (SA12, still holding reduced-problem indices) by comparing at
	// most three characters plus one precomputed rank.
	p, t, k := 0, n0-n1, 0
	getI := func() int32 {
		if int(SA12[t]) < n0 {
			return SA12[t]*3 + 1
		}
		return (SA12[t]-int32(n0))*3 + 2
	}
	for k < n {
		i := getI()
		jpos := SA0[p]

		var sa12Smaller bool
		if int(SA12[t]) < n0 {
			sa12Smaller = leq2(sPad[i], s12[int(SA12[t])+n0], sPad[jpos], s12[jpos/3])
		} else {
			sa12Smaller = leq3(
				sPad[i], sPad[i+1], s12[int(SA12[t])-n0+1],
				sPad[jpos], sPad[jpos+1], s12[jpos/3+int32(n0)],
			)
		}

		if sa12Smaller {
			SA[k] = i
			t++
			k++
			if t == n02 {
				for p < n0 {
					SA[k] = SA0[p]
					p++
					k++
				}
			}
		} else {
			SA[k] = jpos
			p++
			k++
			if p == n0 {
				for t < n02 {
					SA[k] = getI()
					t++
					k++
				}
			}
		}
	}
}
