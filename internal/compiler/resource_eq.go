package compiler

import (
	"fmt"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// CompileResourceEqV2 implements resource equality for resource-v2.
func CompileResourceEqV2(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	return compileResourceEq(args, false)
}

// CompileResourceEqV1 implements resource equality for resource-v1:
// identical to v2 except a bare "certname" path is rejected, and
// ["node" "name"] is rewritten to "certname" before delegating to the v2
// rules.
func CompileResourceEqV1(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	return compileResourceEq(args, true)
}

func compileResourceEq(args []queryir.Node, v1 bool) (dialect.CompiledTerm, error) {
	if len(args) != 2 {
		return nil, arityError("=", 2, len(args))
	}
	path, val := args[0], args[1]

	if bare, ok := queryir.AsStr(path); ok && bare == "certname" && v1 {
		return nil, unqueryableField("resources", "certname", dialect.FieldListForError(dialect.Resource))
	}
	if ns, member, ok := queryir.IsPath(path); ok && ns == "node" && member == "name" {
		if !v1 {
			return nil, unqueryableField("resources", "node.name", dialect.FieldListForError(dialect.Resource))
		}
		path = queryir.Str("certname")
	}

	if bare, ok := queryir.AsStr(path); ok {
		switch bare {
		case "tag":
			str, ok := queryir.AsStr(val)
			if !ok {
				return nil, typeError("tag value must be a string, got %T", val)
			}
			lowered := caseFoldLower(str)
			where := Primitives().ArrayContainsMatch("catalog_resources.tags")
			return dialect.FragmentTerm{Fragment: fragment.Leaf(where, value.String(lowered))}, nil

		case "certname":
			param, err := nodeToParam(val)
			if err != nil {
				return nil, err
			}
			return dialect.FragmentTerm{Fragment: fragment.Leaf("certname_catalogs.certname = ?", param)}, nil

		default:
			if dialect.IsSelectable(dialect.Resource, bare) {
				param, err := nodeToParam(val)
				if err != nil {
					return nil, err
				}
				where := fmt.Sprintf("catalog_resources.%s = ?", bare)
				return dialect.FragmentTerm{Fragment: fragment.Leaf(where, param)}, nil
			}
			return nil, unqueryableField("resources", bare, dialect.FieldListForError(dialect.Resource))
		}
	}

	if ns, member, ok := queryir.IsPath(path); ok {
		switch {
		case ns == "node" && member == "active":
			where := "certnames.deactivated IS NOT NULL"
			if truthy(val) {
				where = "certnames.deactivated IS NULL"
			}
			return dialect.FragmentTerm{Fragment: fragment.New(where, []fragment.JoinTag{fragment.Certnames}, nil)}, nil

		case ns == "parameter":
			serialized, err := Primitives().Serialize(val)
			if err != nil {
				return nil, err
			}
			where := "catalog_resources.resource IN (SELECT rp.resource FROM resource_params rp WHERE rp.name = ? AND rp.value = ?)"
			return dialect.FragmentTerm{Fragment: fragment.Leaf(where, value.String(member), serialized)}, nil
		}
	}

	return nil, unqueryableField("resources", fmt.Sprintf("%v", queryir.ToAny(path)), dialect.FieldListForError(dialect.Resource))
}
