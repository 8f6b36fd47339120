package matcher

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/strsim/pkg/strsim"
)

// scorer resolves the scoring function for algo, honoring Canonical and
// routing phonetic codes through the cache
func (m *Matcher) scorer(algo strsim.Algorithm) strsim.Func {
	switch algo {
	case strsim.AlgorithmSoundex:
		return m.phoneticSimilarity
	case strsim.AlgorithmLevenshtein:
		if m.opts.Canonical {
			return canonicalLevenshtein
		}
	case strsim.AlgorithmJaroWinkler:
		if m.opts.Canonical {
			return canonicalJaroWinkler
		}
	}

	fn, _ := strsim.Lookup(algo)
	return fn
}

func (m *Matcher) phoneticSimilarity(a, b string) float64 {
	if m.phoneticCode(a) == m.phoneticCode(b) {
		return 1.0
	}
	return 0.0
}

// canonicalLevenshtein normalizes go-edlib's rune-level edit distance by the
// longer rune count
func canonicalLevenshtein(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(edlib.LevenshteinDistance(a, b))/float64(maxLen)
}

// canonicalJaroWinkler is go-edlib's Jaro-Winkler similarity
func canonicalJaroWinkler(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}

	return float64(score)
}
