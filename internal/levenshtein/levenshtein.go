// Package levenshtein implements character edit distance and the
// similarity ratio derived from it.
package levenshtein

// Distance returns the Levenshtein edit distance between a and b, counted
// in runes. Insertion, deletion and substitution each cost 1.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string on the inner loop to bound row size.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns 1 - Distance(a, b) / max(len(a), len(b), 1).
// Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	longest := max(runeCount(a), runeCount(b), 1)
	return 1 - float64(Distance(a, b))/float64(longest)
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
