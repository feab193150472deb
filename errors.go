package stralg

import "errors"

// ErrSentinelByteInText is returned when a caller's text already
// contains a zero byte; the sentinel is appended by constructors and
// must occur exactly once, at the final position. The library never
// panics on bad input and never logs out of band: this is the one
// construction-time error kind spec.md §7 requires surfacing to the
// caller. The table's other two input-shape kinds, empty_pattern and
// pattern_outside_alphabet, are specified to be handled by matchers
// silently yielding no hits rather than by an error value, so they
// have no sentinel here — see RemapTable.RemapPattern's ok bool and
// every matcher's len(pattern) == 0 guard.
var ErrSentinelByteInText = errors.New("stralg: text contains a sentinel byte (0x00) before construction")
