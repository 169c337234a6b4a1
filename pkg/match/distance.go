// Package match implements the typo acceptance test: Levenshtein distance,
// the length-based typo budget, and the shrink/expand length gate composed
// into a single predicate.
package match

import "unicode/utf8"

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// needed to turn a into b. Comparison is per Unicode code point on both
// sides.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	// Keep the shorter string in ra so the working row stays small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Strip the common prefix, it never contributes edits.
	for len(ra) > 0 && ra[0] == rb[0] {
		ra = ra[1:]
		rb = rb[1:]
	}
	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			sub := prev
			if ra[i-1] != rb[j-1] {
				sub++
			}
			prev = row[j]
			row[j] = min(sub, min(row[j-1], row[j])+1)
		}
	}
	return row[len(rb)]
}

// RuneLen reports the length of s in code points, the granularity every
// comparison in this package uses.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
