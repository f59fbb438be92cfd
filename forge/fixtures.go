package forge

import (
	"fmt"
	"os"

	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/Tsuesun/PoCForgeWeb/util"
	"gopkg.in/yaml.v2"
)

// fixtureFile is the on-disk shape of a fixture catalog
type fixtureFile struct {
	Cves []fixtureCVE `yaml:"cves"`
}

type fixtureCVE struct {
	CveID       string           `yaml:"cve_id"`
	Summary     string           `yaml:"summary"`
	Severity    string           `yaml:"severity"`
	PublishedAt string           `yaml:"published_at"`
	Packages    []fixturePackage `yaml:"packages"`
}

type fixturePackage struct {
	Name               string          `yaml:"name"`
	Ecosystem          string          `yaml:"ecosystem"`
	VulnerableVersions string          `yaml:"vulnerable_versions"`
	PatchedVersions    string          `yaml:"patched_versions"`
	Commits            []fixtureCommit `yaml:"commits"`
	Pocs               []fixturePoC    `yaml:"pocs"`
}

type fixtureCommit struct {
	URL     string `yaml:"url"`
	Sha     string `yaml:"sha"`
	Message string `yaml:"message"`
	Repo    string `yaml:"repo"`
	Date    string `yaml:"date"`
}

type fixturePoC struct {
	CommitURL          string   `yaml:"commit_url"`
	CommitSha          string   `yaml:"commit_sha"`
	VulnerableFunction string   `yaml:"vulnerable_function"`
	AttackVector       string   `yaml:"attack_vector"`
	VulnerableCode     string   `yaml:"vulnerable_code"`
	FixedCode          string   `yaml:"fixed_code"`
	TestCase           string   `yaml:"test_case"`
	Prerequisites      []string `yaml:"prerequisites"`
	Reasoning          string   `yaml:"reasoning"`
	Method             string   `yaml:"method"`
}

// LoadFixtures reads a YAML fixture catalog and merges it into the engine.
// Entries are validated before they are accepted: the id must be a
// well-formed CVE identifier and a package's patched version must not fall
// inside its own vulnerable range.
func (e *Engine) LoadFixtures(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}

	for _, fc := range file.Cves {
		id, ok, _ := util.ValidateCVE(fc.CveID)
		if !ok {
			return fmt.Errorf("fixture entry %q is not a valid CVE identifier", fc.CveID)
		}

		entry, err := fc.toModel(id)
		if err != nil {
			return fmt.Errorf("fixture entry %s: %w", id, err)
		}
		e.catalog[id] = entry
	}

	return nil
}

func (fc fixtureCVE) toModel(id string) (model.CVE, error) {
	entry := model.CVE{
		CveID:       id,
		Summary:     fc.Summary,
		Severity:    fc.Severity,
		PublishedAt: fc.PublishedAt,
	}

	for _, fp := range fc.Packages {
		if err := checkPatchedVersion(fp); err != nil {
			return model.CVE{}, err
		}

		pkg := model.Package{
			Name:               fp.Name,
			Ecosystem:          fp.Ecosystem,
			VulnerableVersions: fp.VulnerableVersions,
			PatchedVersions:    fp.PatchedVersions,
		}
		for _, c := range fp.Commits {
			pkg.Commits = append(pkg.Commits, model.Commit(c))
		}
		for _, p := range fp.Pocs {
			pkg.Pocs = append(pkg.Pocs, model.PoC(p))
		}
		entry.Packages = append(entry.Packages, pkg)
	}

	return entry, nil
}

// checkPatchedVersion rejects a package whose patched version still
// satisfies the vulnerable range. Unparsable versions or ranges are let
// through: fixture authors may use prose ranges the comparators cannot read.
func checkPatchedVersion(fp fixturePackage) error {
	if fp.PatchedVersions == "" || fp.VulnerableVersions == "" {
		return nil
	}

	vulnerable, err := util.VersionInRange(fp.Ecosystem, fp.PatchedVersions, fp.VulnerableVersions)
	if err != nil {
		return nil
	}
	if vulnerable {
		return fmt.Errorf("package %s: patched version %q is inside vulnerable range %q",
			fp.Name, fp.PatchedVersions, fp.VulnerableVersions)
	}
	return nil
}
