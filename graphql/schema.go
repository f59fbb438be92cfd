// Package graphql wires the GraphQL schema for the analysis API.
package graphql

import (
	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/Tsuesun/PoCForgeWeb/graphql/modules/analysis"
	gql "github.com/graphql-go/graphql"
)

// CreateSchema builds the query schema over the given analysis engine
func CreateSchema(engine *forge.Engine) (gql.Schema, error) {
	queryFields := gql.Fields{}
	for name, field := range analysis.Fields(engine) {
		queryFields[name] = field
	}

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields,
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query: rootQuery,
	})
}
