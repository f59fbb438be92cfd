// Package forge implements the analysis engine behind the analyze endpoint.
// It stands in for the PoCForge CLI: reports come from an operator-supplied
// fixture catalog or a built-in canned entry, never from real analysis.
package forge

import (
	"time"

	"github.com/Tsuesun/PoCForgeWeb/model"
)

// Engine produces analysis reports for CVE identifiers
type Engine struct {
	lookbackHours int
	catalog       map[string]model.CVE
	now           func() time.Time
}

// New creates an Engine with an empty fixture catalog
func New(lookbackHours int) *Engine {
	return &Engine{
		lookbackHours: lookbackHours,
		catalog:       make(map[string]model.CVE),
		now:           time.Now,
	}
}

// Analyze builds the report for a normalized CVE identifier. Catalog entries
// win; unknown identifiers get the built-in canned entry stamped with the
// requested id.
func (e *Engine) Analyze(cveID string) (*model.Report, error) {
	entry, ok := e.catalog[cveID]
	if !ok {
		entry = builtinEntry(cveID)
	}

	pocs := 0
	withPocs := 0
	for _, pkg := range entry.Packages {
		if len(pkg.Pocs) > 0 {
			withPocs++
		}
		pocs += len(pkg.Pocs)
	}
	entry.PocsGenerated = pocs

	successRate := 0.0
	if len(entry.Packages) > 0 {
		successRate = 100.0 * float64(withPocs) / float64(len(entry.Packages))
	}

	return &model.Report{
		SearchParams: model.SearchParams{
			Hours:     e.lookbackHours,
			TargetCve: cveID,
			Timestamp: e.now().UTC().Format(time.RFC3339Nano),
		},
		Cves: []model.CVE{entry},
		Summary: model.Summary{
			TotalCves:     1,
			TotalPackages: len(entry.Packages),
			PocsGenerated: pocs,
			SuccessRate:   successRate,
		},
	}, nil
}

// builtinEntry is the canned CVE used when the catalog has no match
func builtinEntry(cveID string) model.CVE {
	return model.CVE{
		CveID:       cveID,
		Summary:     "Mock vulnerability in example package",
		Severity:    "HIGH",
		PublishedAt: "2025-07-08T20:47:53+00:00",
		Packages: []model.Package{
			{
				Name:               "example-package",
				Ecosystem:          "npm",
				VulnerableVersions: "< 2.5.0",
				PatchedVersions:    "2.5.0",
				Commits: []model.Commit{
					{
						URL:     "https://github.com/example/repo/commit/abc123",
						Sha:     "abc123",
						Message: "Fix vulnerability in example function",
						Repo:    "example/repo",
						Date:    "2025-07-08",
					},
				},
				Pocs: []model.PoC{
					{
						CommitURL:          "https://github.com/example/repo/commit/abc123",
						CommitSha:          "abc123",
						VulnerableFunction: "executeCommand",
						AttackVector:       "Command injection via malicious input",
						VulnerableCode:     "const result = execSync(userInput);",
						FixedCode:          "const result = execFileSync(command, args);",
						TestCase:           `const malicious = "ls; rm -rf /"; executeCommand(malicious);`,
						Prerequisites:      []string{"Access to vulnerable function", "Valid input parameters"},
						Reasoning:          "The original code used string concatenation with execSync which allows command injection",
						Method:             "git_extraction",
					},
				},
			},
		},
	}
}
