package analysis

import (
	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/graphql-go/graphql"
)

// Fields returns the query fields exposed by the analysis module
func Fields(engine *forge.Engine) graphql.Fields {
	return graphql.Fields{
		"analyze": &graphql.Field{
			Type:        AnalyzeResultType,
			Description: "Run the analysis engine for a single CVE identifier",
			Args: graphql.FieldConfigArgument{
				"cve_id": &graphql.ArgumentConfig{
					Type: graphql.NewNonNull(graphql.String),
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				cveID, _ := p.Args["cve_id"].(string)
				return ResolveAnalyze(engine, cveID)
			},
		},
	}
}
