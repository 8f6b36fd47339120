package strsim

// prefixBonus is the per-byte weight of the shared-prefix adjustment.
const prefixBonus = 0.1

// PhoneticWeightedSimilarity scores a and b by how many bytes of a find an
// equal byte of b within a sliding match window, boosted by the length of
// their common prefix.
//
// This is a simplified Jaro-Winkler:
//   - positions of b are never marked as consumed, so one byte of b may
//     match several bytes of a;
//   - the transposition term is the common prefix length, not a count of
//     out-of-order matches;
//   - the prefix bonus is not capped at four bytes.
//
// Long shared prefixes can therefore push the score above 1.0. The result
// is not clamped. If no byte matches the score is exactly 0.
func PhoneticWeightedSimilarity(a, b string) float64 {
	window := max(max(len(a), len(b))/2-1, 0)

	matches := 0
	for i := 0; i < len(a); i++ {
		lo := max(0, i-window)
		hi := min(len(b), i+window+1)
		for j := lo; j < hi; j++ {
			if a[i] == b[j] {
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 0.0
	}

	prefix := commonPrefixLen(a, b)

	m := float64(matches)
	t := float64(prefix)
	base := (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3.0

	return base + float64(prefix)*prefixBonus*(1-base)
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
