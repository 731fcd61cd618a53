package safety

import (
	"fmt"
	"regexp"
	"strings"
)

// Navigation schemes that execute script or reach local resources. Matched
// as prefixes of the lowercased URL.
var dangerousSchemes = []struct {
	prefix   string
	category Category
}{
	{"file://", CategoryPathTraversal},
	{"javascript:", CategoryInjection},
	{"data:", CategoryInjection},
	{"vbscript:", CategoryInjection},
}

// localAddressRes match URLs pointing at loopback or private address space.
var localAddressRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://localhost`),
	regexp.MustCompile(`(?i)^https?://127\.`),
	regexp.MustCompile(`(?i)^https?://192\.168\.`),
	regexp.MustCompile(`(?i)^https?://10\.`),
	regexp.MustCompile(`(?i)^https?://172\.(1[6-9]|2[0-9]|3[01])\.`),
	regexp.MustCompile(`(?i)^https?://\[::1\]`),
}

// sensitiveDirs are path fragments whose presence anywhere in a file path
// blocks access. Compared case-insensitively so Windows spellings match.
var sensitiveDirs = []string{
	"/etc", "/proc", "/sys", "/dev",
	`c:\windows\system32`, `c:\windows\system`,
	".ssh", ".aws", ".git",
}

// ValidateURL checks whether a URL is safe to navigate to. Unlike text
// validation, an empty URL is rejected: there is no legitimate navigation
// target to fall back to.
func ValidateURL(url string) Verdict {
	if url == "" {
		return Verdict{Safe: false, Reason: "empty URL", Field: "url"}
	}
	lowered := strings.ToLower(url)
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(lowered, scheme.prefix) {
			return Verdict{
				Safe:     false,
				Category: scheme.category,
				Reason:   fmt.Sprintf("dangerous URL scheme %q", scheme.prefix),
				Field:    "url",
			}
		}
	}
	for _, re := range localAddressRes {
		if re.MatchString(url) {
			return Verdict{
				Safe:     false,
				Category: CategoryNetworkExfiltration,
				Reason:   "URL targets a local or private address",
				Field:    "url",
			}
		}
	}
	return Verdict{Safe: true}
}

// ValidateFilePath checks whether a file path is safe to access. Only
// relative paths below the working directory pass: absolute and
// home-anchored paths, traversal sequences and sensitive directory
// fragments are all rejected.
func ValidateFilePath(path string) Verdict {
	if path == "" {
		return Verdict{Safe: false, Reason: "empty path", Field: "path"}
	}
	if strings.Contains(path, "..") || strings.HasPrefix(path, "/") || strings.HasPrefix(path, "~") {
		return Verdict{
			Safe:     false,
			Category: CategoryPathTraversal,
			Reason:   "path traversal detected",
			Field:    "path",
		}
	}
	lowered := strings.ToLower(path)
	for _, dir := range sensitiveDirs {
		if strings.Contains(lowered, dir) {
			return Verdict{
				Safe:     false,
				Category: CategoryPathTraversal,
				Reason:   fmt.Sprintf("access to sensitive directory blocked: %s", dir),
				Field:    "path",
			}
		}
	}
	return Verdict{Safe: true}
}
