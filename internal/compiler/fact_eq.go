package compiler

import (
	"fmt"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// CompileFactEq implements fact equality.
func CompileFactEq(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	if len(args) != 2 {
		return nil, arityError("=", 2, len(args))
	}
	path, val := args[0], args[1]

	if bare, ok := queryir.AsStr(path); ok {
		switch bare {
		case "name":
			param, err := nodeToParam(val)
			if err != nil {
				return nil, err
			}
			return dialect.FragmentTerm{Fragment: fragment.Leaf("certname_facts.name = ?", param)}, nil
		case "value":
			return dialect.FragmentTerm{Fragment: fragment.Leaf("certname_facts.value = ?", value.String(stringifyNode(val)))}, nil
		case "certname":
			param, err := nodeToParam(val)
			if err != nil {
				return nil, err
			}
			return dialect.FragmentTerm{Fragment: fragment.Leaf("certname_facts.certname = ?", param)}, nil
		}
	}

	if ns, member, ok := queryir.IsPath(path); ok && ns == "node" && member == "active" {
		where := "certnames.deactivated IS NOT NULL"
		if truthy(val) {
			where = "certnames.deactivated IS NULL"
		}
		return dialect.FragmentTerm{Fragment: fragment.New(where, []fragment.JoinTag{fragment.Certnames}, nil)}, nil
	}

	return nil, unqueryableField("facts", fmt.Sprintf("%v", queryir.ToAny(path)), dialect.FieldListForError(dialect.Fact))
}
