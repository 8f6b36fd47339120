// Package strsim computes similarity scores between two strings.
//
// Five independent metrics are provided:
//   - EditDistanceSimilarity: normalized Levenshtein distance
//   - PhoneticWeightedSimilarity: windowed match density with a prefix bonus
//   - CosineSimilarity: cosine of per-byte frequency vectors
//   - JaccardSimilarity: overlap of the distinct bytes of each string
//   - PhoneticEqual: equality of Soundex-style phonetic codes
//
// Strings are treated as sequences of bytes, not runes. No case folding or
// Unicode normalization is applied; callers that want either should
// normalize before scoring.
//
// Every function is pure and total. Degenerate inputs such as two empty
// strings resolve to a fixed score instead of NaN or a division by zero.
package strsim
