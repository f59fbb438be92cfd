package util

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// BuildPurl constructs a package URL string from a package name and its
// ecosystem label. Scoped npm names ("@scope/name") split into
// namespace/name. Returns "" when the name is empty.
func BuildPurl(name, ecosystem string) string {
	if IsEmpty(name) {
		return ""
	}

	purlType := strings.ToLower(strings.TrimSpace(ecosystem))
	if purlType == "" {
		purlType = packageurl.TypeGeneric
	}

	namespace := ""
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		namespace = name[:idx]
		name = name[idx+1:]
	}

	purl := packageurl.NewPackageURL(purlType, namespace, name, "", nil, "")
	return purl.ToString()
}

// ParsePURL parses a package URL string
func ParsePURL(purlStr string) (*packageurl.PackageURL, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
