package stralg

// RemapTable is an injective mapping from the bytes observed in some
// text to a dense alphabet 0..AlphabetSize-1, with 0 reserved for the
// sentinel. It is required by the BWT index (§4.5): approximate
// backward search enumerates every letter of the alphabet at each
// search step, which only makes sense over a dense, small range.
type RemapTable struct {
	forward [256]byte
	present [256]bool
	reverse []byte // reverse[code] is the original byte; reverse[0] is unused (sentinel)

	// AlphabetSize is sigma: the number of distinct codes, counting
	// the sentinel (code 0).
	AlphabetSize int
}

// BuildRemapTable scans text once and assigns consecutive codes
// 1, 2, ... in ascending order of the original byte value.
func BuildRemapTable(text []byte) *RemapTable {
	var seen [256]bool
	for _, b := range text {
		seen[b] = true
	}

	rt := &RemapTable{reverse: []byte{0}}
	code := byte(1)
	for b := 0; b < 256; b++ {
		if !seen[b] {
			continue
		}
		rt.forward[b] = code
		rt.present[b] = true
		rt.reverse = append(rt.reverse, byte(b))
		code++
	}
	rt.AlphabetSize = int(code)
	return rt
}

// Remap returns text mapped through the table with a trailing
// sentinel (code 0) appended.
func (rt *RemapTable) Remap(text []byte) []byte {
	out := make([]byte, len(text)+1)
	for i, b := range text {
		out[i] = rt.forward[b]
	}
	out[len(text)] = 0
	return out
}

// RemapByte maps a single original byte to its code. ok is false if
// the byte was never observed when the table was built.
func (rt *RemapTable) RemapByte(b byte) (code byte, ok bool) {
	return rt.forward[b], rt.present[b]
}

// RemapPattern maps pattern through the table. ok is false the moment
// pattern contains a byte absent from the text the table was built
// from; mapped is nil in that case and the caller must short-circuit
// the search to the empty result (spec.md §7's pattern_outside_alphabet
// kind, handled here by this ok bool rather than an error value).
func (rt *RemapTable) RemapPattern(pattern []byte) (mapped []byte, ok bool) {
	mapped = make([]byte, len(pattern))
	for i, b := range pattern {
		if !rt.present[b] {
			return nil, false
		}
		mapped[i] = rt.forward[b]
	}
	return mapped, true
}

// Reverse maps a code back to its original byte. The sentinel code 0
// reverse-maps to 0.
func (rt *RemapTable) Reverse(code byte) byte {
	if int(code) >= len(rt.reverse) {
		return 0
	}
	return rt.reverse[code]
}
