package normalize

import (
	"testing"

	"github.com/standardbeagle/strsim/pkg/strsim"
)

func TestNoop(t *testing.T) {
	n := New(Options{})

	if !n.IsNoop() {
		t.Error("Empty options should be a no-op")
	}

	in := "  Running Late  "
	if got := n.Apply(in); got != in {
		t.Errorf("Expected input unchanged, got %q", got)
	}

	var nilNormalizer *Normalizer
	if got := nilNormalizer.Apply(in); got != in {
		t.Errorf("Nil normalizer should return input, got %q", got)
	}
}

func TestTrimSpace(t *testing.T) {
	n := New(Options{TrimSpace: true})

	if got := n.Apply("\t robert \n"); got != "robert" {
		t.Errorf("Expected %q, got %q", "robert", got)
	}
}

func TestFoldCase(t *testing.T) {
	n := New(Options{FoldCase: true})

	tests := []struct {
		in       string
		expected string
	}{
		{"Robert", "ROBERT"},
		{"already UPPER", "ALREADY UPPER"},
		{"x-ray 42", "X-RAY 42"},
		// non-ASCII bytes are left alone
		{"caf\xc3\xa9", "CAF\xc3\xa9"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Apply(tt.in); got != tt.expected {
			t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestStem(t *testing.T) {
	n := New(Options{Stem: true, StemMinLength: 3})

	tests := []struct {
		word     string
		expected string
	}{
		{"running", "run"},
		{"runs", "run"},
		{"searching", "search"},
		{"authentication", "authent"},
		{"function", "function"},
	}

	for _, tt := range tests {
		if got := n.Stem(tt.word); got != tt.expected {
			t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.expected)
		}
	}
}

func TestStemKeepsCase(t *testing.T) {
	n := New(Options{Stem: true, StemMinLength: 3})

	tests := []struct {
		word     string
		expected string
	}{
		{"ROBERTS", "ROBERT"},
		{"ROBERT", "ROBERT"},
		{"TYMCZAK", "TYMCZAK"},
		{"RUNNING", "RUN"},
		{"Running", "Run"},
		{"running", "run"},
	}

	for _, tt := range tests {
		if got := n.Stem(tt.word); got != tt.expected {
			t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.expected)
		}
	}

	// upper-case input keeps its phonetic code through stemming
	for _, word := range []string{"ROBERT", "TYMCZAK"} {
		if got, want := strsim.PhoneticCode(n.Apply(word)), strsim.PhoneticCode(word); got != want {
			t.Errorf("PhoneticCode(Apply(%q)) = %q, want %q", word, got, want)
		}
	}
}

func TestStemMinLength(t *testing.T) {
	n := New(Options{Stem: true, StemMinLength: 5})

	if got := n.Stem("runs"); got != "runs" {
		t.Errorf("Word shorter than min length should not be stemmed, got %q", got)
	}

	if got := n.Stem("running"); got != "run" {
		t.Errorf("Expected %q, got %q", "run", got)
	}

	if got := New(Options{Stem: true, StemMinLength: -1}).Options().StemMinLength; got != DefaultStemMinLength {
		t.Errorf("Negative min length should fall back to %d, got %d", DefaultStemMinLength, got)
	}
}

func TestStemExclusions(t *testing.T) {
	n := New(Options{Stem: true, StemMinLength: 3, Exclusions: []string{"Running"}})

	if got := n.Stem("running"); got != "running" {
		t.Errorf("Excluded word should not be stemmed, got %q", got)
	}
}

func TestApplyOrder(t *testing.T) {
	n := New(Options{TrimSpace: true, Stem: true, StemMinLength: 3, FoldCase: true})

	// stemming sees lowercase words, folding happens last
	if got := n.Apply("  searching   running "); got != "SEARCH RUN" {
		t.Errorf("Expected %q, got %q", "SEARCH RUN", got)
	}
}
