package sanitize

import (
	"strings"
	"testing"
)

func TestStringMasksSecrets(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"password", "password: hunter2", "password: [MASKED]"},
		{"password equals", "PASSWORD=s3cret!", "PASSWORD=[MASKED]"},
		{"bearer", "Authorization: Bearer abc.def-123", "Authorization: Bearer [MASKED]"},
		{"api key", "api_key=sk-12345", "api_key=[MASKED]"},
		{"token", "token: deadbeefcafe", "token: [MASKED]"},
		{"plain", "click the save button", "click the save button"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := String(tc.in); got != tc.want {
				t.Fatalf("String(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStringEscapesControlCharacters(t *testing.T) {
	got := String("line1\nline2\tend\x00tail")
	if strings.ContainsAny(got, "\n\t\x00") {
		t.Fatalf("String left raw control characters: %q", got)
	}
	if !strings.Contains(got, `\n`) || !strings.Contains(got, `\t`) {
		t.Fatalf("String dropped the escaped markers: %q", got)
	}
}

func TestEvidenceTruncates(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := Evidence(long)
	if len(got) != maxEvidenceLen {
		t.Fatalf("len(Evidence) = %d, want %d", len(got), maxEvidenceLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("Evidence(%q...) = %q, want ... suffix", long[:8], got)
	}
	short := "short fragment"
	if got := Evidence(short); got != short {
		t.Fatalf("Evidence(%q) = %q", short, got)
	}
}

func TestSprintfSanitizesResult(t *testing.T) {
	got := Sprintf("blocked input %q", "password=letmein")
	if strings.Contains(got, "letmein") {
		t.Fatalf("Sprintf leaked secret: %q", got)
	}
}
