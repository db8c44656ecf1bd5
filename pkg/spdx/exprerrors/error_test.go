package exprerrors

import (
	"strings"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	err := New("MIT OR Unknown", 7, "unknown license id \"Unknown\"").
		WithExpected(ExpectedLicense).
		WithSuggestion("Did you mean 'MIT'?")

	msg := err.Error()

	for _, want := range []string{
		"invalid SPDX expression at offset 7: unknown license id \"Unknown\"",
		"  | MIT OR Unknown",
		"  = expected: license",
		"  = suggestion: Did you mean 'MIT'?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() missing %q:\n%s", want, msg)
		}
	}

	// The caret lines up under the offending token.
	lines := strings.Split(msg, "\n")
	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	if caretLine == "" {
		t.Fatalf("Error() has no caret line:\n%s", msg)
	}
	if got := strings.Index(caretLine, "^"); got != len("  | ")+7 {
		t.Errorf("caret at column %d, want %d", got, len("  | ")+7)
	}
}

func TestParseError_EmptyInput(t *testing.T) {
	msg := New("", 0, "empty expression").WithExpected(ExpectedExpression).Error()
	if strings.Contains(msg, "|") {
		t.Errorf("Error() renders a source line for empty input:\n%s", msg)
	}
	if !strings.Contains(msg, "expected: expression") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestParseError_OffsetClamped(t *testing.T) {
	tests := []struct {
		name   string
		offset int
	}{
		{"negative", -3},
		{"past the end", 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := New("MIT", tt.offset, "boom").Error()
			if !strings.Contains(msg, "^") {
				t.Errorf("Error() has no caret:\n%s", msg)
			}
		})
	}
}

func TestSuggestID(t *testing.T) {
	known := []string{"MIT", "Apache-2.0", "BSD-3-Clause", "GPL-2.0-only"}

	tests := []struct {
		name    string
		unknown string
		want    string
	}{
		{"close match", "Apach-2.0", "Did you mean 'Apache-2.0'?"},
		{"case difference only", "mit", "Did you mean 'MIT'?"},
		{"too far away", "Completely-Different-Thing-1.0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestID(tt.unknown, known); got != tt.want {
				t.Errorf("SuggestID(%q) = %q, want %q", tt.unknown, got, tt.want)
			}
		})
	}

	if got := SuggestID("MIT", nil); got != "" {
		t.Errorf("SuggestID() with no known ids = %q, want empty", got)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"mit", "mit", 0},
		{"mit", "", 3},
		{"", "isc", 3},
		{"kitten", "sitting", 3},
		{"gpl-2.0", "gpl-3.0", 1},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
