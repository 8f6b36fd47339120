package strsim

// phoneticDigits maps uppercase consonants to their phonetic digit.
// Zero means the byte contributes nothing to a code.
var phoneticDigits = [256]byte{
	'B': '1', 'F': '1', 'P': '1', 'V': '1',
	'C': '2', 'G': '2', 'J': '2', 'K': '2', 'Q': '2', 'S': '2', 'X': '2', 'Z': '2',
	'D': '3', 'T': '3',
	'L': '4',
	'M': '5', 'N': '5',
	'R': '6',
}

// PhoneticCode derives a Soundex-style code for s: the first byte in
// upper case followed by one digit per later byte found in the consonant
// table.
//
// Only the first byte is upper-cased and the table holds uppercase letters
// only, so lowercase letters after the first never contribute a digit:
// PhoneticCode("Robert") is "R" while PhoneticCode("ROBERT") is "R163".
// Digits are neither de-duplicated nor padded. An empty s yields "".
func PhoneticCode(s string) string {
	if s == "" {
		return ""
	}

	code := make([]byte, 1, len(s))
	code[0] = toUpperASCII(s[0])

	for i := 1; i < len(s); i++ {
		if d := phoneticDigits[s[i]]; d != 0 {
			code = append(code, d)
		}
	}

	return string(code)
}

// PhoneticEqual reports whether a and b share a phonetic code.
func PhoneticEqual(a, b string) bool {
	return PhoneticCode(a) == PhoneticCode(b)
}

// PhoneticSimilarity is PhoneticEqual expressed as a score: 1 or 0.
func PhoneticSimilarity(a, b string) float64 {
	if PhoneticEqual(a, b) {
		return 1.0
	}
	return 0.0
}

func toUpperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
