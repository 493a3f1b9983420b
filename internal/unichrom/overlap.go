package unichrom

import "strings"

// overlapIndex returns the index in base at which toOverlay can be glued
// onto it: the length of base's prefix that survives the gluing. Two
// fragments only glue when they overlap by more than half their length, so
// toOverlay must be longer than half of base and the matched region must
// cover more than half of toOverlay.
//
// The shortest qualifying prefix of toOverlay that is also a suffix of
// base wins. The second return is false when no such overlap exists.
func overlapIndex(base, toOverlay string) (int, bool) {
	if len(toOverlay) <= len(base)/2 {
		return 0, false
	}

	// start from just over half of the overlaying fragment and pull in one
	// character at a time, checking whether base ends with the accumulation
	for i := len(base)/2 + 1; i < len(toOverlay); i++ {
		if strings.HasSuffix(base, toOverlay[:i+1]) {
			return len(base) - (i + 1), true
		}
	}

	return 0, false
}
