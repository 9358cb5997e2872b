package compiler

import (
	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/queryir"
)

// ResourceV1Table, ResourceV2Table, and FactV2Table are the three dialect
// tables. They are built once at package init and never mutated
// afterward. select-resources and select-facts ignore the table they
// were resolved from and always finalize against
// ResourceV2Table/FactV2Table respectively, which is what makes
// resource-v2 and fact-v2 mutually recursive: each table's entry can
// route into the other dataset's canonical table.
var (
	ResourceV1Table dialect.Table
	ResourceV2Table dialect.Table
	FactV2Table     dialect.Table
)

func init() {
	ResourceV2Table = dialect.Table{
		"=":                CompileResourceEqV2,
		"~":                CompileResourceRegex,
		"and":              CompileAnd,
		"or":               CompileOr,
		"not":              CompileNot,
		"project":          CompileProject,
		"in-result":        compileInResultFor(dialect.Resource),
		"select-resources": CompileSelectResources,
		"select-facts":     CompileSelectFacts,
	}

	FactV2Table = dialect.Table{
		"=":                CompileFactEq,
		"~":                CompileFactRegex,
		">":                CompileFactIneq(">"),
		"<":                CompileFactIneq("<"),
		">=":               CompileFactIneq(">="),
		"<=":               CompileFactIneq("<="),
		"and":              CompileAnd,
		"or":               CompileOr,
		"not":              CompileNot,
		"project":          CompileProject,
		"in-result":        compileInResultFor(dialect.Fact),
		"select-resources": CompileSelectResources,
		"select-facts":     CompileSelectFacts,
	}

	// resource-v1 forbids subqueries outright, and has no "~" entry at all —
	// an attempt raises UnknownOperator rather than UnsupportedInDialect.
	ResourceV1Table = dialect.Table{
		"=":                CompileResourceEqV1,
		"and":              CompileAnd,
		"or":               CompileOr,
		"not":              CompileNot,
		"project":          unsupportedInDialectFunc("project"),
		"in-result":        unsupportedInDialectFunc("in-result"),
		"select-resources": unsupportedInDialectFunc("select-resources"),
		"select-facts":     unsupportedInDialectFunc("select-facts"),
	}
}

// unsupportedInDialectFunc builds a CompileFunc stub for an operator the
// language knows but a particular dialect table forbids.
func unsupportedInDialectFunc(op string) dialect.CompileFunc {
	return func(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
		return nil, unsupportedInDialect(op)
	}
}
