// Package analysis implements the resolvers for analysis queries.
package analysis

import (
	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/Tsuesun/PoCForgeWeb/util"
)

// ResolveAnalyze runs the engine for a CVE identifier and wraps the outcome
// in the same discriminated shape the REST endpoint returns. Validation and
// engine failures surface as the failure variant, never as resolver errors.
func ResolveAnalyze(engine *forge.Engine, rawID string) (model.AnalyzeResponse, error) {
	id, ok, msg := util.ValidateCVE(rawID)
	if !ok {
		if msg == "" {
			msg = util.CVEFormatHint
		}
		return model.FailResponse(msg), nil
	}

	report, err := engine.Analyze(id)
	if err != nil {
		return model.FailResponse("Analysis failed: " + err.Error()), nil
	}

	return model.OkResponse(report), nil
}
