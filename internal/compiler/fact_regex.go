package compiler

import (
	"fmt"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
)

// CompileFactRegex implements the "~" operator for facts.
func CompileFactRegex(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
	if len(args) != 2 {
		return nil, arityError("~", 2, len(args))
	}
	path, pattern := args[0], args[1]

	patternParam, err := nodeToParam(pattern)
	if err != nil {
		return nil, err
	}

	bare, ok := queryir.AsStr(path)
	if !ok {
		return nil, unqueryableField("facts", fmt.Sprintf("%v", queryir.ToAny(path)), dialect.FieldListForError(dialect.Fact))
	}

	switch bare {
	case "certname", "name", "value":
		where := Primitives().RegexMatch("certname_facts." + bare)
		return dialect.FragmentTerm{Fragment: fragment.Leaf(where, patternParam)}, nil
	default:
		return nil, unqueryableField("facts", bare, dialect.FieldListForError(dialect.Fact))
	}
}
