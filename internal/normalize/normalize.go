// Package normalize prepares strings before they are scored.
//
// The scoring kernel in pkg/strsim compares raw bytes. Callers that want
// whitespace trimming, identifier splitting, case folding or word stemming
// apply a Normalizer to both inputs first.
package normalize

import (
	"strings"

	"github.com/surgebase/porter2"
)

// DefaultStemMinLength is the shortest word the stemmer will touch
const DefaultStemMinLength = 3

// Options selects the normalization steps
type Options struct {
	TrimSpace     bool     // Strip leading and trailing whitespace
	SplitWords    bool     // Break identifiers into space-separated words
	FoldCase      bool     // Upper-case ASCII letters
	Stem          bool     // Reduce each word to its porter2 stem, keeping its case
	StemMinLength int      // Words shorter than this are kept as is
	Exclusions    []string // Words never stemmed (compared lowercase)
}

// Normalizer applies Options to strings. It is immutable and safe for
// concurrent use.
type Normalizer struct {
	opts       Options
	exclusions map[string]bool
}

// New creates a normalizer. A negative StemMinLength falls back to
// DefaultStemMinLength.
func New(opts Options) *Normalizer {
	if opts.StemMinLength < 0 {
		opts.StemMinLength = DefaultStemMinLength
	}

	exclusions := make(map[string]bool, len(opts.Exclusions))
	for _, w := range opts.Exclusions {
		exclusions[strings.ToLower(w)] = true
	}

	return &Normalizer{opts: opts, exclusions: exclusions}
}

// Options returns the configured options
func (n *Normalizer) Options() Options {
	return n.opts
}

// IsNoop reports whether Apply returns its input unchanged
func (n *Normalizer) IsNoop() bool {
	return !n.opts.TrimSpace && !n.opts.SplitWords && !n.opts.FoldCase && !n.opts.Stem
}

// Apply normalizes s. Steps run in a fixed order: trim, split, stem, fold
// case. Splitting needs the original case to find camelCase boundaries;
// stemming keeps all-upper and capitalized words in their case.
func (n *Normalizer) Apply(s string) string {
	if n == nil || n.IsNoop() {
		return s
	}

	if n.opts.TrimSpace {
		s = strings.TrimSpace(s)
	}

	if n.opts.SplitWords {
		s = splitIdentifiers(s)
	}

	if n.opts.Stem {
		s = n.stemWords(s)
	}

	if n.opts.FoldCase {
		s = foldASCII(s)
	}

	return s
}

// Stem returns the stem of a single word, or the word itself when it is
// excluded or shorter than the minimum length. porter2 works on lowercase
// words; the stem gets the word's case back (ROBERTS -> ROBERT,
// Running -> Run) so case-sensitive scores are not shifted by stemming.
func (n *Normalizer) Stem(word string) string {
	if n.exclusions[strings.ToLower(word)] {
		return word
	}

	if len(word) < n.opts.StemMinLength {
		return word
	}

	return restoreCase(word, porter2.Stem(word))
}

// restoreCase upper-cases stem when word is all upper-case ASCII letters,
// or its first byte when only word's first byte is upper-case
func restoreCase(word, stem string) string {
	if word == "" || stem == "" || !isUpper(word[0]) {
		return stem
	}

	allUpper := true
	for i := 0; i < len(word); i++ {
		if isLower(word[i]) {
			allUpper = false
			break
		}
	}

	if allUpper {
		return foldASCII(stem)
	}
	return foldASCII(stem[:1]) + stem[1:]
}

// stemWords stems each whitespace-separated word and joins them with a
// single space
func (n *Normalizer) stemWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = n.Stem(w)
	}
	return strings.Join(words, " ")
}

// foldASCII upper-cases a-z and leaves every other byte alone, matching the
// byte semantics of the scoring kernel
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
