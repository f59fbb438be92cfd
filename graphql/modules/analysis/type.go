// Package analysis defines the GraphQL types for analysis results.
package analysis

import (
	"github.com/graphql-go/graphql"
)

// SearchParamsType describes the lookback window of an analysis run
var SearchParamsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SearchParams",
	Fields: graphql.Fields{
		"hours":      &graphql.Field{Type: graphql.Int},
		"target_cve": &graphql.Field{Type: graphql.String},
		"timestamp":  &graphql.Field{Type: graphql.String},
	},
})

// CommitType represents a fix commit
var CommitType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Commit",
	Fields: graphql.Fields{
		"url":     &graphql.Field{Type: graphql.String},
		"sha":     &graphql.Field{Type: graphql.String},
		"message": &graphql.Field{Type: graphql.String},
		"repo":    &graphql.Field{Type: graphql.String},
		"date":    &graphql.Field{Type: graphql.String},
	},
})

// PoCType represents a generated proof-of-concept
var PoCType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PoC",
	Fields: graphql.Fields{
		"commit_url":          &graphql.Field{Type: graphql.String},
		"commit_sha":          &graphql.Field{Type: graphql.String},
		"vulnerable_function": &graphql.Field{Type: graphql.String},
		"attack_vector":       &graphql.Field{Type: graphql.String},
		"vulnerable_code":     &graphql.Field{Type: graphql.String},
		"fixed_code":          &graphql.Field{Type: graphql.String},
		"test_case":           &graphql.Field{Type: graphql.String},
		"prerequisites":       &graphql.Field{Type: graphql.NewList(graphql.String)},
		"reasoning":           &graphql.Field{Type: graphql.String},
		"method":              &graphql.Field{Type: graphql.String},
	},
})

// PackageType represents an affected package
var PackageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Package",
	Fields: graphql.Fields{
		"name":                &graphql.Field{Type: graphql.String},
		"ecosystem":           &graphql.Field{Type: graphql.String},
		"vulnerable_versions": &graphql.Field{Type: graphql.String},
		"patched_versions":    &graphql.Field{Type: graphql.String},
		"commits":             &graphql.Field{Type: graphql.NewList(CommitType)},
		"pocs":                &graphql.Field{Type: graphql.NewList(PoCType)},
	},
})

// CVEType represents a vulnerability entry in a report
var CVEType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CVE",
	Fields: graphql.Fields{
		"cve_id":         &graphql.Field{Type: graphql.String},
		"summary":        &graphql.Field{Type: graphql.String},
		"severity":       &graphql.Field{Type: graphql.String},
		"published_at":   &graphql.Field{Type: graphql.String},
		"packages":       &graphql.Field{Type: graphql.NewList(PackageType)},
		"pocs_generated": &graphql.Field{Type: graphql.Int},
	},
})

// SummaryType represents the aggregate counts of a report
var SummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Summary",
	Fields: graphql.Fields{
		"total_cves":     &graphql.Field{Type: graphql.Int},
		"total_packages": &graphql.Field{Type: graphql.Int},
		"pocs_generated": &graphql.Field{Type: graphql.Int},
		"success_rate":   &graphql.Field{Type: graphql.Float},
	},
})

// ReportType represents a full analysis report
var ReportType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Report",
	Fields: graphql.Fields{
		"search_params": &graphql.Field{Type: SearchParamsType},
		"cves":          &graphql.Field{Type: graphql.NewList(CVEType)},
		"summary":       &graphql.Field{Type: SummaryType},
	},
})

// AnalyzeResultType is the discriminated success/failure wrapper
var AnalyzeResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AnalyzeResult",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.Boolean},
		"data":    &graphql.Field{Type: ReportType},
		"error":   &graphql.Field{Type: graphql.String},
	},
})
