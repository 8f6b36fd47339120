package matcher

import "github.com/standardbeagle/strsim/pkg/strsim"

// Score is one algorithm's result in a Report
type Score struct {
	Algorithm strsim.Algorithm `json:"algorithm"`
	Value     float64          `json:"score"`
}

// Report holds every algorithm's score for one pair of strings
type Report struct {
	A         string  `json:"a"`
	B         string  `json:"b"`
	Canonical bool    `json:"canonical"`
	Scores    []Score `json:"scores"`
	CodeA     string  `json:"phonetic_code_a"`
	CodeB     string  `json:"phonetic_code_b"`
}

// Compare scores a and b with every algorithm, in strsim.Algorithms order.
// A and B in the report are the normalized inputs.
func (m *Matcher) Compare(a, b string) Report {
	na, nb := m.normalize(a), m.normalize(b)

	algos := strsim.Algorithms()
	report := Report{
		A:         na,
		B:         nb,
		Canonical: m.opts.Canonical,
		Scores:    make([]Score, 0, len(algos)),
		CodeA:     m.phoneticCode(na),
		CodeB:     m.phoneticCode(nb),
	}

	for _, algo := range algos {
		report.Scores = append(report.Scores, Score{
			Algorithm: algo,
			Value:     m.scorer(algo)(na, nb),
		})
	}

	return report
}

// Get returns the score recorded for algo
func (r Report) Get(algo strsim.Algorithm) (float64, bool) {
	for _, s := range r.Scores {
		if s.Algorithm == algo {
			return s.Value, true
		}
	}
	return 0, false
}
