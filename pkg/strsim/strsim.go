package strsim

// Func scores the similarity of two strings. Higher values mean more similar.
type Func func(a, b string) float64

// Algorithm names a similarity metric.
type Algorithm string

const (
	AlgorithmLevenshtein Algorithm = "levenshtein"
	AlgorithmJaroWinkler Algorithm = "jaro-winkler"
	AlgorithmCosine      Algorithm = "cosine"
	AlgorithmJaccard     Algorithm = "jaccard"
	AlgorithmSoundex     Algorithm = "soundex"
)

var registry = map[Algorithm]Func{
	AlgorithmLevenshtein: EditDistanceSimilarity,
	AlgorithmJaroWinkler: PhoneticWeightedSimilarity,
	AlgorithmCosine:      CosineSimilarity,
	AlgorithmJaccard:     JaccardSimilarity,
	AlgorithmSoundex:     PhoneticSimilarity,
}

// Algorithms returns every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmLevenshtein,
		AlgorithmJaroWinkler,
		AlgorithmCosine,
		AlgorithmJaccard,
		AlgorithmSoundex,
	}
}

// Lookup returns the scoring function registered under name.
func Lookup(name Algorithm) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	_, ok := registry[a]
	return ok
}
