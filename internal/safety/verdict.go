package safety

import "errors"

// Category is a named bucket of related threat patterns.
type Category string

const (
	CategoryDestructiveFilesystem Category = "destructive_filesystem"
	CategoryCredentialLeakage     Category = "credential_leakage"
	CategoryNetworkExfiltration   Category = "network_exfiltration"
	CategoryInjection             Category = "injection"
	CategoryPrivilegeEscalation   Category = "privilege_escalation"
	CategoryPathTraversal         Category = "path_traversal"
	CategorySQLInjection          Category = "sql_injection"
	CategoryUnicodeSecurity       Category = "unicode_security"
	CategoryCustom                Category = "custom"
)

// builtinOrder is the fixed evaluation order for built-in categories.
// Custom patterns are evaluated separately, before any of these.
var builtinOrder = []Category{
	CategoryDestructiveFilesystem,
	CategoryCredentialLeakage,
	CategoryNetworkExfiltration,
	CategoryInjection,
	CategoryPrivilegeEscalation,
	CategoryPathTraversal,
	CategorySQLInjection,
	CategoryUnicodeSecurity,
}

// Verdict is the outcome of a validation call. An unsafe verdict is a normal
// result, not an error; the dispatcher decides how to surface it.
type Verdict struct {
	Safe           bool     `json:"safe"`
	Category       Category `json:"category,omitempty"`
	Reason         string   `json:"reason,omitempty"`
	MatchedPattern string   `json:"matched_pattern,omitempty"`
	Field          string   `json:"field,omitempty"`
}

// ErrInvalidInput marks a malformed request (wrong parameter type, missing
// parameter). It is distinct from an unsafe verdict so callers can tell a
// programming error from a safety rejection.
var ErrInvalidInput = errors.New("invalid input")
