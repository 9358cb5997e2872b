package compiler

import (
	"fmt"
	"strings"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/querysql"
)

// CompileSelectResources implements select-resources: it delegates to the
// whole-query finalizer for resources, always against the canonical
// resource-v2 table regardless of which table this was resolved from. Its
// result is a FinalizedSelect, not a fragment — only project may consume
// it.
func CompileSelectResources(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	if len(args) != 1 {
		return nil, arityError("select-resources", 1, len(args))
	}
	return finalizeSubquery(ResourceV2Table, dialect.Resource, args[0])
}

// CompileSelectFacts implements select-facts, symmetric to
// CompileSelectResources but against the canonical fact-v2 table.
func CompileSelectFacts(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	if len(args) != 1 {
		return nil, arityError("select-facts", 1, len(args))
	}
	return finalizeSubquery(FactV2Table, dialect.Fact, args[0])
}

func finalizeSubquery(canonical dialect.Table, kind dialect.Kind, node queryir.Node) (dialect.CompiledTerm, error) {
	term, err := CompileTerm(canonical, node)
	if err != nil {
		return nil, err
	}
	frag, ok := term.(dialect.FragmentTerm)
	if !ok {
		return nil, malformed(node, "select-%s sub-query must compile to a boolean fragment", kind)
	}
	sql, params, err := querysql.Finalize(kind, frag.Fragment)
	if err != nil {
		return nil, err
	}
	return dialect.FinalizedSelect{SQL: sql, Params: params}, nil
}

// subqueryKind reports which dataset kind a select-* node targets, by
// inspecting its (lowercased) operator name, without compiling it.
func subqueryKind(node queryir.Node) (dialect.Kind, bool) {
	list, ok := queryir.AsList(node)
	if !ok {
		return 0, false
	}
	switch strings.ToLower(list.Op) {
	case "select-resources":
		return dialect.Resource, true
	case "select-facts":
		return dialect.Fact, true
	default:
		return 0, false
	}
}

// CompileProject implements project: subquery must be headed by
// select-resources or select-facts; field must be selectable for that
// subquery's dataset kind. Produces a fragment whose where is a
// column-bearing SELECT expression, not a boolean predicate — only
// in-result may consume it.
func CompileProject(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	if len(args) != 2 {
		return nil, arityError("project", 2, len(args))
	}
	fieldNode, subqueryNode := args[0], args[1]

	field, ok := queryir.AsStr(fieldNode)
	if !ok {
		return nil, malformed(fieldNode, "project field must be a string")
	}

	kind, ok := subqueryKind(subqueryNode)
	if !ok {
		return nil, badSubquery("argument to project must be a select operator")
	}
	if !dialect.IsSelectable(kind, field) {
		return nil, unqueryableField(plural(kind), field, dialect.FieldListForError(kind))
	}

	term, err := CompileTerm(table, subqueryNode)
	if err != nil {
		return nil, err
	}
	fin, ok := term.(dialect.FinalizedSelect)
	if !ok {
		return nil, badSubquery("argument to project must be a select operator")
	}

	where := fmt.Sprintf("SELECT r1.%s FROM (%s) r1", field, fin.SQL)
	return dialect.FragmentTerm{Fragment: fragment.Leaf(where, fin.Params...)}, nil
}

// compileInResultFor binds in-result to the dataset kind currently being
// compiled — kind is fixed per dialect table at assembly time, not passed
// as an argument.
func compileInResultFor(kind dialect.Kind) dialect.CompileFunc {
	return func(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
		if len(args) != 2 {
			return nil, arityError("in-result", 2, len(args))
		}
		fieldNode, subqueryNode := args[0], args[1]

		field, ok := queryir.AsStr(fieldNode)
		if !ok {
			return nil, malformed(fieldNode, "in-result field must be a string")
		}
		if !dialect.IsSelectable(kind, field) {
			return nil, unqueryableField(plural(kind), field, dialect.FieldListForError(kind))
		}

		subList, ok := queryir.AsList(subqueryNode)
		if !ok || strings.ToLower(subList.Op) != "project" {
			return nil, badSubquery("argument to in-result must be a project operator")
		}

		term, err := CompileTerm(table, subqueryNode)
		if err != nil {
			return nil, err
		}
		proj, ok := term.(dialect.FragmentTerm)
		if !ok {
			return nil, badSubquery("argument to in-result must be a project operator")
		}

		where := fmt.Sprintf("%s IN (%s)", field, proj.Where)
		return dialect.FragmentTerm{Fragment: fragment.New(where, proj.Joins, proj.Params)}, nil
	}
}

func plural(k dialect.Kind) string {
	return k.String() + "s"
}
