package stralg

import "testing"

func TestBuildSuffixTreeFromSAMatchesNaive(t *testing.T) {
	texts := []string{
		"banana", "mississippi", "a", "", "aaaaa", "aabaa",
		"acacacg", "abababababab",
	}
	for _, text := range texts {
		naive, err := BuildSuffixTreeNaive([]byte(text))
		if err != nil {
			t.Fatal(err)
		}

		sa, err := BuildSuffixArraySkew([]byte(text))
		if err != nil {
			t.Fatal(err)
		}
		lcp := BuildLCPArray(sa)
		fromSA := BuildSuffixTreeFromSA(sa, lcp)

		wantS, gotS := serializeTree(naive, naive.Root()), serializeTree(fromSA, fromSA.Root())
		if wantS != gotS {
			t.Errorf("fromSA tree for %q differs from naive:\n got: %s\nwant: %s", text, gotS, wantS)
		}
	}
}
