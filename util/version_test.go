package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionInRange(t *testing.T) {
	tests := []struct {
		name      string
		ecosystem string
		version   string
		rangeExpr string
		want      bool
	}{
		{name: "npm below fix", ecosystem: "npm", version: "2.4.9", rangeExpr: "< 2.5.0", want: true},
		{name: "npm at fix", ecosystem: "npm", version: "2.5.0", rangeExpr: "< 2.5.0", want: false},
		{name: "npm bounded range", ecosystem: "npm", version: "1.5.0", rangeExpr: ">= 1.0.0, < 2.0.0", want: true},
		{name: "npm before range", ecosystem: "npm", version: "0.9.0", rangeExpr: ">= 1.0.0, < 2.0.0", want: false},
		{name: "pypi post release ordering", ecosystem: "PyPI", version: "1.0.0", rangeExpr: "<= 1.0.0", want: true},
		{name: "pypi above bound", ecosystem: "pypi", version: "2.1", rangeExpr: "< 2.0", want: false},
		{name: "semver default ecosystem", ecosystem: "go", version: "1.2.3", rangeExpr: "< 1.3.0", want: true},
		{name: "exact match", ecosystem: "go", version: "1.2.3", rangeExpr: "1.2.3", want: true},
		{name: "exact mismatch", ecosystem: "go", version: "1.2.4", rangeExpr: "= 1.2.3", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := VersionInRange(tc.ecosystem, tc.version, tc.rangeExpr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVersionInRangeErrors(t *testing.T) {
	_, err := VersionInRange("npm", "not-a-version", "< 2.5.0")
	require.Error(t, err)

	_, err = VersionInRange("go", "1.0.0", "")
	require.Error(t, err)

	_, err = VersionInRange("go", "1.0.0", "<")
	require.Error(t, err)
}
