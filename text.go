package stralg

// appendSentinel returns a new buffer equal to text with one trailing
// zero byte, the sentinel every construction in this package indexes
// over. text is never mutated.
func appendSentinel(text []byte) []byte {
	out := make([]byte, len(text)+1)
	copy(out, text)
	out[len(text)] = 0
	return out
}

// validateText rejects a text that already contains an embedded
// sentinel byte. The sentinel is appended by the constructors, so one
// occurring inside the caller's text would collide with it and break
// every ordering invariant that follows.
func validateText(text []byte) error {
	for _, b := range text {
		if b == 0 {
			return ErrSentinelByteInText
		}
	}
	return nil
}
