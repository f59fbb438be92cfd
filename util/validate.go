package util

import (
	"regexp"
	"strings"
)

// cveRegex matches a normalized CVE identifier: 4-digit year, then 4+ digits
var cveRegex = regexp.MustCompile(`^CVE-\d{4}-\d{4,}$`)

// CVEFormatHint is the fixed user-facing message shown for a malformed id
const CVEFormatHint = "Please enter a valid CVE ID (e.g., CVE-2023-12345)"

// ValidateCVE checks a raw user string against the CVE identifier shape.
// The input is trimmed and matched case-insensitively. An empty or
// whitespace-only string is "not yet submitted": ok is false but msg is
// empty so no error is shown. On success the normalized (uppercased) id is
// returned.
func ValidateCVE(raw string) (normalized string, ok bool, msg string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false, ""
	}

	upper := strings.ToUpper(trimmed)
	if !cveRegex.MatchString(upper) {
		return "", false, CVEFormatHint
	}

	return upper, true, ""
}
