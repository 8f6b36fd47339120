package strsim

import "math"

// FrequencyVector counts occurrences of each byte value in a string.
type FrequencyVector [256]int

// NewFrequencyVector builds the frequency vector of s in a single pass.
func NewFrequencyVector(s string) FrequencyVector {
	var v FrequencyVector
	for i := 0; i < len(s); i++ {
		v[s[i]]++
	}
	return v
}

// Dot returns the dot product of v and other.
func (v *FrequencyVector) Dot(other *FrequencyVector) int {
	dot := 0
	for c, n := range v {
		dot += n * other[c]
	}
	return dot
}

// SquaredMagnitude returns the sum of squared counts.
func (v *FrequencyVector) SquaredMagnitude() int {
	sum := 0
	for _, n := range v {
		sum += n * n
	}
	return sum
}

// Magnitude returns the Euclidean norm of v.
func (v *FrequencyVector) Magnitude() float64 {
	return math.Sqrt(float64(v.SquaredMagnitude()))
}

// CosineSimilarity returns the cosine of the angle between the byte
// frequency vectors of a and b. Counts are non-negative so the result lies
// in [0, 1]. If either string is empty the score is 0.
func CosineSimilarity(a, b string) float64 {
	va := NewFrequencyVector(a)
	vb := NewFrequencyVector(b)

	sqA := va.SquaredMagnitude()
	sqB := vb.SquaredMagnitude()
	if sqA == 0 || sqB == 0 {
		return 0.0
	}

	// sqrt(|A|^2 * |B|^2) equals |A|*|B| but keeps cos(s, s) exactly 1.
	return float64(va.Dot(&vb)) / math.Sqrt(float64(sqA)*float64(sqB))
}
