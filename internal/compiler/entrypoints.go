package compiler

import (
	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/querysql"
	"github.com/queryforge/pdbquery/internal/value"
)

// ResourceQueryToSQL is the resource dataset's public entry point:
// compile query against table, then finalize against the resource
// schema.
func ResourceQueryToSQL(table dialect.Table, query queryir.Node) (string, []value.Param, error) {
	return queryToSQL(dialect.Resource, table, query)
}

// FactQueryToSQL is the fact dataset's public entry point, symmetric to
// ResourceQueryToSQL.
func FactQueryToSQL(table dialect.Table, query queryir.Node) (string, []value.Param, error) {
	return queryToSQL(dialect.Fact, table, query)
}

func queryToSQL(kind dialect.Kind, table dialect.Table, query queryir.Node) (string, []value.Param, error) {
	term, err := CompileTerm(table, query)
	if err != nil {
		return "", nil, err
	}
	frag, ok := term.(dialect.FragmentTerm)
	if !ok {
		return "", nil, malformed(query, "root query must compile to a boolean fragment, not a select-* result")
	}
	return querysql.Finalize(kind, frag.Fragment)
}
