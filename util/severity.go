package util

import "strings"

// knownSeverityClasses are the labels the UI ships styles for
var knownSeverityClasses = map[string]struct{}{
	"critical": {},
	"high":     {},
	"medium":   {},
	"low":      {},
	"none":     {},
}

// SeverityClass returns the CSS class selector for a severity label.
// The selector is the lowercased label when it is one of the known set;
// unrecognized labels fall back to the default presentation.
func SeverityClass(severity string) string {
	lower := strings.ToLower(strings.TrimSpace(severity))
	if _, ok := knownSeverityClasses[lower]; ok {
		return "severity-" + lower
	}
	return "severity-default"
}
