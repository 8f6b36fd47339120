package strsim

// EditDistance computes the Levenshtein distance between a and b: the
// minimum number of single-byte insertions, deletions or substitutions
// needed to turn a into b.
//
// Only two rows of the dynamic programming table are kept, so memory is
// O(len(b)).
func EditDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// EditDistanceSimilarity returns 1 - EditDistance(a, b) / max(len(a), len(b)).
// Two empty strings are identical and score 1.0.
func EditDistanceSimilarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(EditDistance(a, b))/float64(maxLen)
}
