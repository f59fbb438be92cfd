package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCVE(t *testing.T) {
	tests := []struct {
		input      string
		ok         bool
		normalized string
		msg        string
	}{
		{input: "CVE-2023-1234", ok: true, normalized: "CVE-2023-1234"},
		{input: "cve-2023-1234", ok: true, normalized: "CVE-2023-1234"},
		{input: "  CvE-2023-123456  ", ok: true, normalized: "CVE-2023-123456"},
		{input: "CVE-2023-123", ok: false, msg: CVEFormatHint},
		{input: "CVE-23-1234", ok: false, msg: CVEFormatHint},
		{input: "CVE-2023-1234x", ok: false, msg: CVEFormatHint},
		{input: "not a cve", ok: false, msg: CVEFormatHint},
		{input: "", ok: false, msg: ""},
		{input: "   ", ok: false, msg: ""},
	}

	for _, tc := range tests {
		normalized, ok, msg := ValidateCVE(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.normalized, normalized, "input %q", tc.input)
		assert.Equal(t, tc.msg, msg, "input %q", tc.input)
	}
}
