package matcher

import (
	"errors"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/standardbeagle/strsim/internal/config"
	"github.com/standardbeagle/strsim/internal/debug"
	strsimerrors "github.com/standardbeagle/strsim/internal/errors"
	"github.com/standardbeagle/strsim/internal/normalize"
	"github.com/standardbeagle/strsim/pkg/strsim"
)

// Options configures a Matcher
type Options struct {
	Algorithm         strsim.Algorithm
	Threshold         float64 // Minimum score accepted by Match and FindMatches (0-1)
	Canonical         bool    // Textbook levenshtein/jaro-winkler via go-edlib
	MaxResults        int     // FindMatches limit, 0 = unlimited
	Normalizer        *normalize.Normalizer
	PhoneticCacheSize int // 0 disables the phonetic code cache
}

// Matcher scores string pairs with a fixed algorithm
type Matcher struct {
	opts  Options
	score strsim.Func
	codes *lru.Cache[uint64, cachedCode]
}

// cachedCode keeps the source string so a hash collision cannot return
// another string's code
type cachedCode struct {
	src  string
	code string
}

// Match is a candidate that met the threshold
type Match struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// New creates a matcher. An empty algorithm selects the config default.
func New(opts Options) (*Matcher, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = config.DefaultAlgorithm
	}
	if !opts.Algorithm.Valid() {
		return nil, strsimerrors.NewAlgorithmError(string(opts.Algorithm), config.AlgorithmNames())
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, strsimerrors.NewConfigError("threshold", strconv.FormatFloat(opts.Threshold, 'g', -1, 64),
			errors.New("must be between 0 and 1"))
	}
	if opts.MaxResults < 0 {
		return nil, strsimerrors.NewConfigError("max_results", strconv.Itoa(opts.MaxResults),
			errors.New("must not be negative"))
	}

	m := &Matcher{opts: opts}

	if opts.PhoneticCacheSize > 0 {
		cache, err := lru.New[uint64, cachedCode](opts.PhoneticCacheSize)
		if err != nil {
			return nil, err
		}
		m.codes = cache
	}

	m.score = m.scorer(opts.Algorithm)
	return m, nil
}

// NewFromConfig creates a matcher from loaded configuration
func NewFromConfig(cfg *config.Config) (*Matcher, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	return New(Options{
		Algorithm:  strsim.Algorithm(cfg.Matcher.Algorithm),
		Threshold:  cfg.Matcher.Threshold,
		Canonical:  cfg.Matcher.Canonical,
		MaxResults: cfg.Matcher.MaxResults,
		Normalizer: normalize.New(normalize.Options{
			TrimSpace:     cfg.Normalize.TrimSpace,
			SplitWords:    cfg.Normalize.SplitWords,
			FoldCase:      cfg.Normalize.FoldCase,
			Stem:          cfg.Normalize.Stem,
			StemMinLength: cfg.Normalize.StemMinLength,
			Exclusions:    cfg.Normalize.Exclusions,
		}),
		PhoneticCacheSize: cfg.Cache.PhoneticCodes,
	})
}

// Algorithm returns the configured algorithm
func (m *Matcher) Algorithm() strsim.Algorithm {
	return m.opts.Algorithm
}

// Threshold returns the configured similarity threshold
func (m *Matcher) Threshold() float64 {
	return m.opts.Threshold
}

// Canonical reports whether textbook implementations are in use
func (m *Matcher) Canonical() bool {
	return m.opts.Canonical
}

// Similarity returns the score of a and b after normalization
func (m *Matcher) Similarity(a, b string) float64 {
	return m.score(m.normalize(a), m.normalize(b))
}

// Match checks if two strings score at or above the threshold
func (m *Matcher) Match(a, b string) bool {
	return m.Similarity(a, b) >= m.opts.Threshold
}

// FindMatches returns the candidates scoring at or above the threshold
// against target, highest score first. Ties keep candidate order.
func (m *Matcher) FindMatches(target string, candidates []string) []Match {
	norm := m.normalize(target)

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		score := m.score(norm, m.normalize(candidate))
		if score >= m.opts.Threshold {
			matches = append(matches, Match{Term: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	debug.LogMatch("%s %q: %d of %d candidates >= %.2f\n",
		m.opts.Algorithm, target, len(matches), len(candidates), m.opts.Threshold)

	if m.opts.MaxResults > 0 && len(matches) > m.opts.MaxResults {
		return matches[:m.opts.MaxResults]
	}
	return matches
}

// PhoneticCode returns the phonetic code of s after normalization
func (m *Matcher) PhoneticCode(s string) string {
	return m.phoneticCode(m.normalize(s))
}

func (m *Matcher) normalize(s string) string {
	return m.opts.Normalizer.Apply(s)
}

// phoneticCode reads through the LRU cache when one is configured
func (m *Matcher) phoneticCode(s string) string {
	if m.codes == nil {
		return strsim.PhoneticCode(s)
	}

	key := xxhash.Sum64String(s)
	if c, ok := m.codes.Get(key); ok && c.src == s {
		return c.code
	}

	code := strsim.PhoneticCode(s)
	m.codes.Add(key, cachedCode{src: s, code: code})
	return code
}
