// Package sanitize prepares untrusted input fragments for embedding in
// verdict reasons and log lines: control characters are stripped, secretish
// values are masked and overlong fragments are truncated.
package sanitize

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

const maxEvidenceLen = 120

var (
	passwordRe = regexp.MustCompile(`(?i)(password\s*[:=]\s*)(\S+)`)
	bearerRe   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._\-+/=]+)`)
	apiKeyRe   = regexp.MustCompile(`(?i)(api[_-]?key\s*[:=]\s*)(\S+)`)
	tokenishRe = regexp.MustCompile(`(?i)((?:secret|token)\s*[:=]\s*)([A-Za-z0-9._\-+/=]{6,})`)
	controlsRe = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
)

// String masks secretish values and strips control characters from a
// free-form fragment.
func String(s string) string {
	if s == "" {
		return s
	}
	out := s
	out = passwordRe.ReplaceAllString(out, "${1}[MASKED]")
	out = bearerRe.ReplaceAllString(out, "${1}[MASKED]")
	out = apiKeyRe.ReplaceAllString(out, "${1}[MASKED]")
	out = tokenishRe.ReplaceAllString(out, "${1}[MASKED]")
	out = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(out)
	return controlsRe.ReplaceAllString(out, " ")
}

// Evidence sanitizes a matched fragment and truncates it for inclusion in a
// verdict reason.
func Evidence(s string) string {
	safe := String(s)
	if len(safe) <= maxEvidenceLen {
		return safe
	}
	return safe[:maxEvidenceLen-3] + "..."
}

// Sprintf formats like fmt.Sprintf and sanitizes the result.
func Sprintf(format string, args ...any) string {
	return String(fmt.Sprintf(format, args...))
}

// Logf prints a sanitized log line.
func Logf(format string, args ...any) {
	log.Print(Sprintf(format, args...))
}
