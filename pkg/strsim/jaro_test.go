package strsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneticWeightedSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"both empty", "", "", 0.0},
		{"one empty", "abc", "", 0.0},
		{"other empty", "", "abc", 0.0},
		{"no shared bytes", "abc", "xyz", 0.0},
		// window is 0 for length 2, so the swapped bytes never meet
		{"outside window", "ab", "ba", 0.0},
		// window clamps to 0 instead of going negative
		{"single byte", "a", "a", 0.7},
		{"identical short", "abc", "abc", 2.0/3.0 + 0.1},
		// 6 matches, prefix "MAR": base 5/6, bonus 0.3*(1/6)
		{"martha", "MARTHA", "MARHTA", 5.3 / 6.0},
		// b[0] matches both a[0] and a[1]: 2 matches, prefix 1
		{"reused position", "aaaa", "abbb", 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PhoneticWeightedSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestPhoneticWeightedSimilarityUncappedPrefix(t *testing.T) {
	s := "abcdefghijk"

	// base 2/3 plus 11*0.1*(1/3)
	score := PhoneticWeightedSimilarity(s, s)
	assert.InDelta(t, 3.1/3.0, score, 1e-9)
	assert.Greater(t, score, 1.0, "long identical strings exceed 1.0")
}

func TestPhoneticWeightedSimilarityZeroIsExact(t *testing.T) {
	assert.Equal(t, 0.0, PhoneticWeightedSimilarity("qqqq", "zzzz"))
}

func TestCommonPrefixLen(t *testing.T) {
	assert.Equal(t, 0, commonPrefixLen("", "abc"))
	assert.Equal(t, 2, commonPrefixLen("abx", "aby"))
	assert.Equal(t, 3, commonPrefixLen("abc", "abcdef"))
	assert.Equal(t, 3, commonPrefixLen("abcdef", "abc"))
}

func BenchmarkPhoneticWeightedSimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		PhoneticWeightedSimilarity("authentication", "authorization")
	}
}
