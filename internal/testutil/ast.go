package testutil

import "github.com/queryforge/pdbquery/internal/queryir"

// Op builds a list node (an operator application) from a string operator
// and a mix of Node and plain Go values (string/float64/int/bool), which
// are coerced via Lit — this is the shape test tables build queries in
// without repeating queryir.Str/Num/Bool wrapping at every leaf.
func Op(op string, operands ...any) queryir.List {
	args := make([]queryir.Node, 0, len(operands))
	for _, o := range operands {
		args = append(args, Lit(o))
	}
	return queryir.List{Op: op, Args: args}
}

// Lit coerces a plain Go value (or an already-built Node) into a Node.
func Lit(v any) queryir.Node {
	switch val := v.(type) {
	case queryir.Node:
		return val
	case string:
		return queryir.Str(val)
	case int:
		return queryir.Num(float64(val))
	case float64:
		return queryir.Num(val)
	case bool:
		return queryir.Bool(val)
	default:
		panic("testutil: unsupported literal type")
	}
}

// Path builds a two-element namespaced path, e.g. Path("node", "active").
func Path(namespace, member string) queryir.List {
	return queryir.List{Op: namespace, Args: []queryir.Node{queryir.Str(member)}}
}
