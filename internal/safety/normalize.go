package safety

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// dangerousControlRunes are formatting characters that can reorder or hide
// text. They are scanned on the raw string before canonicalization, because
// NFKC would otherwise strip or alter them and mask the attempt.
var dangerousControlRunes = map[rune]string{
	'\u202E': "right-to-left override",
	'\u202D': "left-to-right override",
	'\u200E': "left-to-right mark",
	'\u200F': "right-to-left mark",
	'\uFEFF': "zero-width no-break space",
	'\u00A0': "non-breaking space",
	'\u2028': "line separator",
	'\u2029': "paragraph separator",
}

// Normalize scans raw input for dangerous Unicode control characters and,
// when none are present, returns the NFKC canonical form for a second
// pattern pass. A non-nil blocked verdict means pattern evaluation must not
// proceed.
func Normalize(raw string) (canonical string, blocked *Verdict) {
	for _, r := range raw {
		if name, ok := dangerousControlRunes[r]; ok {
			return "", &Verdict{
				Safe:     false,
				Category: CategoryUnicodeSecurity,
				Reason:   fmt.Sprintf("dangerous Unicode control character: %s (%U)", name, r),
			}
		}
	}
	if !strings.ContainsFunc(raw, func(r rune) bool { return r >= 0x80 }) {
		// ASCII input is already canonical.
		return raw, nil
	}
	return norm.NFKC.String(raw), nil
}
