// Package matcher scores and ranks strings with a configurable similarity
// algorithm.
//
// A Matcher wraps one of the pkg/strsim metrics with optional input
// normalization, a match threshold and candidate ranking:
//
//	m, err := matcher.New(matcher.Options{
//	    Algorithm: strsim.AlgorithmJaroWinkler,
//	    Threshold: 0.8,
//	})
//	matches := m.FindMatches("getUserNme", []string{"getUserName", "setUserName"})
//
// With Canonical set, the levenshtein and jaro-winkler algorithms use the
// textbook implementations from go-edlib, which compare runes and cap the
// Winkler prefix at four characters. The default kernel implementations
// compare bytes and keep their documented simplifications.
//
// Phonetic codes for the soundex algorithm are memoized in a bounded LRU
// cache. A Matcher is safe for concurrent use.
package matcher
