// Package querysql implements the join assembler and query finalizer: it
// takes an already-compiled fragment.Fragment and produces the final,
// independent SELECT statement and parameter vector. It knows nothing
// about the query AST or operator dispatch — that lives in
// internal/compiler, which calls Finalize after running CompileTerm.
package querysql

import (
	"fmt"
	"strings"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/value"
)

// resourceColumns is the stable column order the resource SELECT clause
// emits. Order is implementation-defined but must be stable across calls,
// which a fixed slice guarantees.
var resourceColumns = []string{
	"certname", "catalog", "resource", "type", "title",
	"tags", "exported", "sourcefile", "sourceline",
}

// Finalize builds the final SQL statement for kind from an already-
// compiled fragment. This is the only place that emits SELECT/FROM.
func Finalize(kind dialect.Kind, frag fragment.Fragment) (string, []value.Param, error) {
	joinClause, err := joinClause(kind, frag.Joins)
	if err != nil {
		return "", nil, err
	}

	var sql string
	switch kind {
	case dialect.Resource:
		sql = fmt.Sprintf(
			"SELECT %s FROM catalog_resources JOIN certname_catalogs USING(catalog) %s WHERE %s",
			strings.Join(resourceColumns, ", "), joinClause, frag.Where,
		)
	case dialect.Fact:
		sql = fmt.Sprintf(
			"SELECT certname_facts.certname, certname_facts.name, certname_facts.value FROM certname_facts %s WHERE %s",
			joinClause, frag.Where,
		)
	default:
		return "", nil, fmt.Errorf("querysql: unknown dataset kind %v", kind)
	}

	return sql, frag.Params, nil
}

// joinClause maps each join tag through the kind-specific join SQL lookup
// and concatenates the results with single spaces. Returns "" for no
// joins — the surrounding template in Finalize supplies the spaces on
// either side, which is why a joinless query ends up with two adjacent
// spaces ("USING(catalog)  WHERE").
func joinClause(kind dialect.Kind, tags []fragment.JoinTag) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		sql, ok := dialect.JoinSQL(kind, tag)
		if !ok {
			return "", fmt.Errorf("querysql: unknown join tag %q for dataset %s", tag, kind)
		}
		parts = append(parts, sql)
	}
	return strings.Join(parts, " "), nil
}
