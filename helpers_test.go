package stralg

import "sort"

// sortInt32 sorts positions ascending; several matchers are only
// specified to agree up to order (spec.md §8, property 6), so tests
// normalize before comparing.
func sortInt32(s []int32) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
