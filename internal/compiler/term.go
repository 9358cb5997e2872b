// Package compiler implements the recursive term compiler, the boolean
// combinators, the leaf predicate compilers, and the subquery primitives
// that together turn a queryir.Node into a dialect.CompiledTerm.
package compiler

import (
	"strings"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/queryir"
)

// CompileTerm is the recursive dispatcher: given a dialect table and one
// AST node, it validates shape, resolves the operator, and invokes its
// compiler on the remaining arguments.
func CompileTerm(table dialect.Table, node queryir.Node) (dialect.CompiledTerm, error) {
	list, ok := queryir.AsList(node)
	if !ok {
		return nil, malformed(node, "expected an operator application (a list), got %T", node)
	}
	if list.Op == "" {
		return nil, malformed(node, "operator application is missing its operator")
	}

	op := strings.ToLower(list.Op)
	fn, found := table.Lookup(op)
	if !found {
		return nil, unknownOperator(node, list.Op)
	}
	return fn(table, list.Args)
}

// compileChildFragment compiles node and requires the result to be a
// Fragment, not a FinalizedSelect — used by combinators, which may only
// combine boolean fragments, never independent SELECT tuples (only
// project may consume a FinalizedSelect).
func compileChildFragment(table dialect.Table, node queryir.Node) (dialect.FragmentTerm, error) {
	term, err := CompileTerm(table, node)
	if err != nil {
		return dialect.FragmentTerm{}, err
	}
	frag, ok := term.(dialect.FragmentTerm)
	if !ok {
		return dialect.FragmentTerm{}, malformed(node, "term does not produce a boolean fragment (did you mean to wrap a select-* in project/in-result?)")
	}
	return frag, nil
}
