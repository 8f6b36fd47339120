package strsim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyVector(t *testing.T) {
	v := NewFrequencyVector("banana")

	assert.Equal(t, 3, v['a'])
	assert.Equal(t, 2, v['n'])
	assert.Equal(t, 1, v['b'])
	assert.Equal(t, 0, v['z'])
	assert.Equal(t, 14, v.SquaredMagnitude())
	assert.InDelta(t, math.Sqrt(14), v.Magnitude(), 1e-12)

	w := NewFrequencyVector("nab")
	assert.Equal(t, 6, v.Dot(&w))
	assert.Equal(t, v.Dot(&w), w.Dot(&v))
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"both empty", "", "", 0.0},
		{"empty left", "", "anything", 0.0},
		{"empty right", "anything", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"anagram", "ab", "ba", 1.0},
		{"counts matter", "aab", "ab", 3 / math.Sqrt(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-12)
		})
	}
}

func TestCosineSimilaritySelfIsOne(t *testing.T) {
	for _, s := range []string{"a", "aa", "hello world", "mississippi", "\x00\xff"} {
		assert.Equal(t, 1.0, CosineSimilarity(s, s), "CosineSimilarity(%q, %q)", s, s)
	}
}
