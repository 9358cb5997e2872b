package queryir

import "fmt"

// FromAny converts a generically-decoded document (the result of
// json.Unmarshal or yaml.Unmarshal into `any`) into a Node tree. Both
// decoders produce the same shape for our grammar — strings, numbers,
// bools, and slices — modulo the concrete numeric type, which FromAny
// normalizes to Num (float64).
//
// This is the boundary between "query arrived as bytes from a CLI flag or
// file" and the immutable Node tree the compiler operates on; nothing past
// this function needs to know queries were ever serialized.
func FromAny(v any) (Node, error) {
	switch val := v.(type) {
	case string:
		return Str(val), nil
	case bool:
		return Bool(val), nil
	case float64:
		return Num(val), nil
	case float32:
		return Num(float64(val)), nil
	case int:
		return Num(float64(val)), nil
	case int64:
		return Num(float64(val)), nil
	case []any:
		if len(val) == 0 {
			return nil, fmt.Errorf("queryir: empty list has no operator")
		}
		op, ok := val[0].(string)
		if !ok {
			return nil, fmt.Errorf("queryir: list head must be a string operator, got %T", val[0])
		}
		args := make([]Node, 0, len(val)-1)
		for i, elem := range val[1:] {
			n, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("queryir: argument %d of %q: %w", i, op, err)
			}
			args = append(args, n)
		}
		return List{Op: op, Args: args}, nil
	default:
		return nil, fmt.Errorf("queryir: unsupported value of type %T", v)
	}
}

// ToAny converts a Node back into the generic string/float64/bool/[]any
// shape, for re-serializing a query (e.g. rendering the offending term in
// a compile error message, or tests that round-trip through FromAny).
func ToAny(n Node) any {
	switch node := n.(type) {
	case Str:
		return string(node)
	case Num:
		return float64(node)
	case Bool:
		return bool(node)
	case List:
		out := make([]any, 0, len(node.Args)+1)
		out = append(out, node.Op)
		for _, a := range node.Args {
			out = append(out, ToAny(a))
		}
		return out
	default:
		return nil
	}
}
