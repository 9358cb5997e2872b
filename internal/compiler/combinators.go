package compiler

import (
	"fmt"
	"strings"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// CompileAnd implements the "and" operator: requires at least one term,
// compiles every term against table, and conjoins them.
func CompileAnd(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	return compileBoolCombinator(table, args, "and", " AND ")
}

// CompileOr implements the "or" operator: requires at least one term,
// compiles every term against table, and disjoins them.
func CompileOr(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	return compileBoolCombinator(table, args, "or", " OR ")
}

func compileBoolCombinator(table dialect.Table, args []queryir.Node, op, joiner string) (dialect.CompiledTerm, error) {
	if len(args) == 0 {
		return nil, malformed(nil, "%s requires at least one term", op)
	}

	var wheres []string
	var params []value.Param
	var joins []fragment.JoinTag

	for _, a := range args {
		child, err := compileChildFragment(table, a)
		if err != nil {
			return nil, err
		}
		wheres = append(wheres, fmt.Sprintf("(%s)", child.Where))
		params = append(params, child.Params...)
		joins = append(joins, child.Joins...)
	}

	return dialect.FragmentTerm{Fragment: fragment.Fragment{
		Where:  strings.Join(wheres, joiner),
		Joins:  fragment.MergeJoins(joins),
		Params: params,
	}}, nil
}

// CompileNot implements the "not" operator: lowers to "or" over the terms,
// then wraps the result's where in NOT (...). joins and params are
// inherited unchanged from the underlying or.
func CompileNot(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	if len(args) == 0 {
		return nil, malformed(nil, "not requires at least one term")
	}

	term, err := CompileOr(table, args)
	if err != nil {
		return nil, err
	}
	or := term.(dialect.FragmentTerm)

	return dialect.FragmentTerm{Fragment: fragment.Fragment{
		Where:  "NOT (" + or.Where + ")",
		Joins:  or.Joins,
		Params: or.Params,
	}}, nil
}
