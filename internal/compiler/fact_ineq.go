package compiler

import (
	"fmt"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// ineqOperators maps each supported comparison operator to its SQL form.
var ineqOperators = map[string]string{
	">":  ">",
	"<":  "<",
	">=": ">=",
	"<=": "<=",
}

// CompileFactIneq implements the fact numeric-inequality operators. op is
// bound when the dialect table is assembled, one closure per operator.
func CompileFactIneq(op string) dialect.CompileFunc {
	sqlOp := ineqOperators[op]
	return func(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
		if len(args) != 2 {
			return nil, arityError(op, 2, len(args))
		}
		path, val := args[0], args[1]

		bare, ok := queryir.AsStr(path)
		if !ok || bare != "value" {
			return nil, unqueryableField("facts", fmt.Sprintf("%v", queryir.ToAny(path)), "value")
		}

		s := stringifyNode(val)
		n, okNum := Primitives().ParseNumber(s)
		if !okNum {
			return nil, typeError("Value %s must be a number for %s comparison", s, op)
		}

		where := fmt.Sprintf("%s %s ?", Primitives().NumericCast("certname_facts.value"), sqlOp)
		return dialect.FragmentTerm{Fragment: fragment.Leaf(where, value.Number(n))}, nil
	}
}
