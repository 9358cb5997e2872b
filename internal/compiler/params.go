package compiler

import (
	"strconv"

	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// nodeToParam converts a leaf AST value directly into a bound parameter,
// with no storage-serialization hook. Used everywhere a predicate binds
// "value" as-is (bare columns, certname, name) rather than through
// Serialize (reserved for resource parameter values, which may be
// non-scalar).
func nodeToParam(n queryir.Node) (value.Param, error) {
	switch v := n.(type) {
	case queryir.Str:
		return value.String(string(v)), nil
	case queryir.Num:
		return value.Number(v), nil
	case queryir.Bool:
		return value.Bool(v), nil
	default:
		return nil, malformed(n, "expected a scalar value, got %T", n)
	}
}

// stringifyNode renders a leaf AST value as a string, for predicates
// stored as TEXT regardless of the operand's AST shape (fact values).
func stringifyNode(n queryir.Node) string {
	switch v := n.(type) {
	case queryir.Str:
		return string(v)
	case queryir.Num:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case queryir.Bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// truthy reports whether a value node should be treated as "true" for
// ["node" "active"]-style boolean path predicates.
func truthy(n queryir.Node) bool {
	switch v := n.(type) {
	case queryir.Bool:
		return bool(v)
	case queryir.Str:
		return v != "" && v != "false"
	case queryir.Num:
		return v != 0
	default:
		return false
	}
}
