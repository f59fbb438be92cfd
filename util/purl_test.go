package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPurl(t *testing.T) {
	assert.Equal(t, "pkg:npm/example-package", BuildPurl("example-package", "npm"))
	assert.Equal(t, "pkg:pypi/requests", BuildPurl("requests", "PyPI"))
	assert.Equal(t, "", BuildPurl("", "npm"))

	// no ecosystem label falls back to generic
	parsed, err := ParsePURL(BuildPurl("mystery", ""))
	require.NoError(t, err)
	assert.Equal(t, "generic", parsed.Type)

	// scoped npm names split into namespace/name
	parsed, err = ParsePURL(BuildPurl("@babel/core", "npm"))
	require.NoError(t, err)
	assert.Equal(t, "npm", parsed.Type)
	assert.Equal(t, "@babel", parsed.Namespace)
	assert.Equal(t, "core", parsed.Name)
}
