package strsim

// byteSet records which byte values occur in a string.
type byteSet [256]bool

func newByteSet(s string) (byteSet, int) {
	var set byteSet
	size := 0
	for i := 0; i < len(s); i++ {
		if !set[s[i]] {
			set[s[i]] = true
			size++
		}
	}
	return set, size
}

// JaccardSimilarity returns |A ∩ B| / |A ∪ B| where A and B are the sets of
// distinct bytes in a and b. Two empty strings score 1.0.
func JaccardSimilarity(a, b string) float64 {
	setA, sizeA := newByteSet(a)
	setB, sizeB := newByteSet(b)

	intersection := 0
	for c := range setA {
		if setA[c] && setB[c] {
			intersection++
		}
	}

	union := sizeA + sizeB - intersection
	if union == 0 {
		return 1.0
	}

	return float64(intersection) / float64(union)
}
