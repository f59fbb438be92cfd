// Package model - API types for analyze requests/responses
package model

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	CveID string `json:"cve_id"`
}

// AnalyzeResponse is a discriminated result: exactly one of Data or Error
// is populated, selected by Success.
type AnalyzeResponse struct {
	Success bool    `json:"success"`
	Data    *Report `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// OkResponse wraps a report in the success variant
func OkResponse(report *Report) AnalyzeResponse {
	return AnalyzeResponse{Success: true, Data: report}
}

// FailResponse wraps an error message in the failure variant
func FailResponse(msg string) AnalyzeResponse {
	return AnalyzeResponse{Success: false, Error: msg}
}
