// Package model - report types returned by the analysis engine
package model

// SearchParams describes the lookback window used for the analysis run
type SearchParams struct {
	Hours     int    `json:"hours"`
	TargetCve string `json:"target_cve"`
	Timestamp string `json:"timestamp"`
}

// Commit is a fix commit referenced by a package
type Commit struct {
	URL     string `json:"url"`
	Sha     string `json:"sha"`
	Message string `json:"message"`
	Repo    string `json:"repo"`
	Date    string `json:"date"`
}

// PoC is a generated proof-of-concept for a fix commit.
// VulnerableFunction, VulnerableCode, FixedCode and TestCase are optional
// and rendered only when present.
type PoC struct {
	CommitURL          string   `json:"commit_url"`
	CommitSha          string   `json:"commit_sha"`
	VulnerableFunction string   `json:"vulnerable_function,omitempty"`
	AttackVector       string   `json:"attack_vector"`
	VulnerableCode     string   `json:"vulnerable_code,omitempty"`
	FixedCode          string   `json:"fixed_code,omitempty"`
	TestCase           string   `json:"test_case,omitempty"`
	Prerequisites      []string `json:"prerequisites"`
	Reasoning          string   `json:"reasoning"`
	Method             string   `json:"method"`
}

// Package is an affected package with its fix commits and generated PoCs
type Package struct {
	Name               string   `json:"name"`
	Ecosystem          string   `json:"ecosystem"`
	VulnerableVersions string   `json:"vulnerable_versions"`
	PatchedVersions    string   `json:"patched_versions"`
	Commits            []Commit `json:"commits"`
	Pocs               []PoC    `json:"pocs"`
}

// CVE is a single vulnerability entry in a report
type CVE struct {
	CveID         string    `json:"cve_id"`
	Summary       string    `json:"summary"`
	Severity      string    `json:"severity"`
	PublishedAt   string    `json:"published_at"`
	Packages      []Package `json:"packages"`
	PocsGenerated int       `json:"pocs_generated"`
}

// Summary holds aggregate counts for a report
type Summary struct {
	TotalCves     int     `json:"total_cves"`
	TotalPackages int     `json:"total_packages"`
	PocsGenerated int     `json:"pocs_generated"`
	SuccessRate   float64 `json:"success_rate"`
}

// Report is the full analysis result for one target CVE
type Report struct {
	SearchParams SearchParams `json:"search_params"`
	Cves         []CVE        `json:"cves"`
	Summary      Summary      `json:"summary"`
}
