package util

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// comparator is one clause of a range expression, e.g. "< 2.5.0"
type comparator struct {
	op      string
	version string
}

// parseRangeExpr splits a range expression like ">= 1.0.0, < 2.5.0" into
// comparators. A bare version is treated as an exact match.
func parseRangeExpr(rangeExpr string) ([]comparator, error) {
	var comps []comparator

	for _, clause := range strings.Split(rangeExpr, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		op := "="
		for _, candidate := range []string{"<=", ">=", "==", "!=", "<", ">", "="} {
			if strings.HasPrefix(clause, candidate) {
				op = candidate
				clause = strings.TrimSpace(strings.TrimPrefix(clause, candidate))
				break
			}
		}
		if clause == "" {
			return nil, fmt.Errorf("range clause %q has no version", rangeExpr)
		}

		comps = append(comps, comparator{op: op, version: clause})
	}

	if len(comps) == 0 {
		return nil, fmt.Errorf("empty range expression")
	}
	return comps, nil
}

// compareVersions orders two version strings using the ecosystem's own
// version semantics: npm ordering for npm, PEP 440 for PyPI, semver
// otherwise. Returns <0, 0 or >0.
func compareVersions(ecosystem, a, b string) (int, error) {
	switch strings.ToLower(ecosystem) {
	case "npm":
		av, err := npm.NewVersion(a)
		if err != nil {
			return 0, fmt.Errorf("invalid npm version %q: %w", a, err)
		}
		bv, err := npm.NewVersion(b)
		if err != nil {
			return 0, fmt.Errorf("invalid npm version %q: %w", b, err)
		}
		if av.LessThan(bv) {
			return -1, nil
		}
		if av.GreaterThan(bv) {
			return 1, nil
		}
		return 0, nil
	case "pypi":
		av, err := pep440.Parse(a)
		if err != nil {
			return 0, fmt.Errorf("invalid PEP 440 version %q: %w", a, err)
		}
		bv, err := pep440.Parse(b)
		if err != nil {
			return 0, fmt.Errorf("invalid PEP 440 version %q: %w", b, err)
		}
		if av.LessThan(bv) {
			return -1, nil
		}
		if av.GreaterThan(bv) {
			return 1, nil
		}
		return 0, nil
	default:
		av, err := semver.NewVersion(a)
		if err != nil {
			return 0, fmt.Errorf("invalid version %q: %w", a, err)
		}
		bv, err := semver.NewVersion(b)
		if err != nil {
			return 0, fmt.Errorf("invalid version %q: %w", b, err)
		}
		return av.Compare(bv), nil
	}
}

// VersionInRange reports whether version satisfies every clause of a range
// expression such as "< 2.5.0" or ">= 1.0.0, < 2.0.0", using the
// ecosystem's version ordering.
func VersionInRange(ecosystem, version, rangeExpr string) (bool, error) {
	comps, err := parseRangeExpr(rangeExpr)
	if err != nil {
		return false, err
	}

	for _, c := range comps {
		cmp, err := compareVersions(ecosystem, version, c.version)
		if err != nil {
			return false, err
		}

		ok := false
		switch c.op {
		case "<":
			ok = cmp < 0
		case "<=":
			ok = cmp <= 0
		case ">":
			ok = cmp > 0
		case ">=":
			ok = cmp >= 0
		case "!=":
			ok = cmp != 0
		case "=", "==":
			ok = cmp == 0
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
