// Package web serves the server-rendered client: the submission form and
// the report/error views built from analysis responses.
package web

import (
	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/Tsuesun/PoCForgeWeb/util"
)

// Page is the binding for the index template. At most one of FormatHint or
// Result is populated, so the template shows exactly one of: format hint,
// error panel, or report.
type Page struct {
	CveInput   string
	FormatHint string
	Result     *ResultView
}

// ResultView is the projection of an AnalyzeResponse. Exactly one of Error
// or Report is set.
type ResultView struct {
	Error  string
	Report *ReportView
}

// ReportView is the display tree for a successful analysis
type ReportView struct {
	SearchParams model.SearchParams
	Cves         []CveView
	Summary      model.Summary
}

// CveView decorates a CVE entry with its severity style selector
type CveView struct {
	model.CVE
	SeverityClass string
	Packages      []PackageView
}

// PackageView decorates a package with its purl
type PackageView struct {
	model.Package
	Purl string
}

// BuildResult projects an analysis response into its display tree. It is a
// pure function of its input: no sorting, no filtering, sequence order
// preserved exactly as received.
func BuildResult(resp model.AnalyzeResponse) ResultView {
	if !resp.Success || resp.Data == nil {
		msg := resp.Error
		if msg == "" {
			msg = "Analysis failed"
		}
		return ResultView{Error: msg}
	}

	report := ReportView{
		SearchParams: resp.Data.SearchParams,
		Summary:      resp.Data.Summary,
	}

	for _, cve := range resp.Data.Cves {
		cv := CveView{
			CVE:           cve,
			SeverityClass: util.SeverityClass(cve.Severity),
		}
		for _, pkg := range cve.Packages {
			cv.Packages = append(cv.Packages, PackageView{
				Package: pkg,
				Purl:    util.BuildPurl(pkg.Name, pkg.Ecosystem),
			})
		}
		report.Cves = append(report.Cves, cv)
	}

	return ResultView{Report: &report}
}
