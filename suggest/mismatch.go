package suggest

// nearMatch reports whether two lower-cased terms are close enough for a
// spelling-correction suggestion: their lengths differ by at most three runes
// and at most two positions differ over the overlapping length.
//
// This positional mismatch count is deliberately not a true edit distance.
// The approximation is part of the observable suggestion behavior; a stronger
// matcher would have to ship as a separate, explicitly named strategy.
func nearMatch(a, b string) bool {
	ra, rb := []rune(a), []rune(b)

	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	if diff > 3 {
		return false
	}

	overlap := len(ra)
	if len(rb) < overlap {
		overlap = len(rb)
	}

	mismatches := 0
	for i := 0; i < overlap; i++ {
		if ra[i] != rb[i] {
			mismatches++
			if mismatches > 2 {
				return false
			}
		}
	}
	return true
}
