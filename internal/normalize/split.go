package normalize

import "strings"

// boundary is a bit set of the word boundaries found in an identifier
type boundary uint8

const (
	boundaryNone      boundary = 0
	boundarySeparator boundary = 1 << iota
	boundaryCamel
	boundaryAcronym
	boundaryDigit
)

func isSeparator(c byte) bool {
	return c == '_' || c == '-' || c == '.' || c == '/'
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isLetter(c byte) bool {
	return isLower(c) || isUpper(c)
}

// detectBoundaries is the first pass of SplitWords
func detectBoundaries(s string) boundary {
	var b boundary
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			b |= boundarySeparator
		}
		if i == 0 {
			continue
		}

		prev := s[i-1]
		switch {
		case isLower(prev) && isUpper(c):
			b |= boundaryCamel
		case i > 1 && isUpper(s[i-2]) && isUpper(prev) && isLower(c):
			b |= boundaryAcronym
		case (isLetter(prev) && isDigit(c)) || (isDigit(prev) && isLetter(c)):
			b |= boundaryDigit
		}
	}
	return b
}

// SplitWords breaks an identifier into words at separators (_ - . /),
// camelCase and acronym transitions (HTTPServer -> HTTP Server) and
// letter/digit transitions. Case is preserved. Only ASCII is inspected;
// other bytes stay inside the current word.
func SplitWords(s string) []string {
	if s == "" {
		return []string{}
	}

	b := detectBoundaries(s)
	if b == boundaryNone {
		return []string{s}
	}

	words := make([]string, 0, 8)
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, s[start:end])
		}
		start = end
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			flush(i)
			start = i + 1
			continue
		}
		if i == 0 || i == start {
			continue
		}

		prev := s[i-1]
		switch {
		case b&boundaryCamel != 0 && isLower(prev) && isUpper(c):
			flush(i)
		case b&boundaryAcronym != 0 && i > 1 && isUpper(s[i-2]) && isUpper(prev) && isLower(c):
			// the last upper-case letter starts the next word
			flush(i - 1)
		case b&boundaryDigit != 0 && ((isLetter(prev) && isDigit(c)) || (isDigit(prev) && isLetter(c))):
			flush(i)
		}
	}
	flush(len(s))

	return words
}

// splitIdentifiers applies SplitWords to each whitespace-separated field
func splitIdentifiers(s string) string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, SplitWords(f)...)
	}
	return strings.Join(words, " ")
}
