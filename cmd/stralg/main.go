// Command stralg builds a string-matching index over a text file and
// reports where a pattern occurs. It is a thin driver over the
// github.com/xiles84/stralg library, not a persistence layer: every
// index is built fresh from the input file on each run (spec.md's
// Non-goals explicitly exclude saving indices to disk).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xiles84/stralg"
)

func main() {
	fileName := flag.String("f", "", "text file to index (required)")
	pattern := flag.String("p", "", "pattern to search for (required)")
	backend := flag.String("backend", "bwt", "matcher: naive, kmp, bmh, sa, st, or bwt")
	edits := flag.Int("edits", -1, "if >= 0, run an edit-distance-bounded search (st or bwt backends only)")
	flag.Parse()

	if *fileName == "" || *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: stralg -f <file> -p <pattern> [-backend naive|kmp|bmh|sa|st|bwt] [-edits k]")
		os.Exit(2)
	}

	text, err := os.ReadFile(*fileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading text:", err)
		os.Exit(1)
	}

	if err := run(text, []byte(*pattern), *backend, *edits); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(text, pattern []byte, backend string, edits int) error {
	if edits >= 0 {
		return runApprox(text, pattern, backend, int32(edits))
	}

	var positions []int32
	switch backend {
	case "naive":
		positions = stralg.NaiveMatch(text, pattern)
	case "kmp":
		positions = stralg.KMPMatch(text, pattern)
	case "bmh":
		positions = stralg.BMHMatch(text, pattern)
	case "sa":
		sa, err := stralg.BuildSuffixArraySkew(text)
		if err != nil {
			return err
		}
		lo, hi := sa.Range(pattern)
		for i := lo; i < hi; i++ {
			positions = append(positions, sa.SA[i])
		}
	case "st":
		st, err := stralg.BuildSuffixTreeMcCreight(text)
		if err != nil {
			return err
		}
		positions = st.MatchPositions(pattern)
	case "bwt":
		idx, err := stralg.BuildBWTIndex(text)
		if err != nil {
			return err
		}
		positions = idx.ExactMatch(pattern)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	if len(positions) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, pos := range positions {
		fmt.Println(pos)
	}
	return nil
}

func runApprox(text, pattern []byte, backend string, maxEdits int32) error {
	switch backend {
	case "st":
		st, err := stralg.BuildSuffixTreeMcCreight(text)
		if err != nil {
			return err
		}
		for _, m := range st.ApproxMatch(pattern, maxEdits) {
			fmt.Printf("%d\tedits=%d\tcigar=%s\n", m.Pos, m.Edits, m.Cigar)
		}
	case "bwt":
		idx, err := stralg.BuildBWTIndex(text)
		if err != nil {
			return err
		}
		for _, m := range idx.ApproxMatch(pattern, maxEdits) {
			fmt.Printf("%d\tedits=%d\tcigar=%s\n", m.Pos, m.Edits, m.Cigar)
		}
	default:
		return fmt.Errorf("approximate search requires -backend st or -backend bwt, got %q", backend)
	}
	return nil
}
