package compiler

import "github.com/queryforge/pdbquery/internal/value"

// stringParams renders a parameter vector as strings for table-driven test
// assertions, panicking on a non-string param — tests that exercise numeric
// or boolean params compare value.NativeAll directly instead.
func stringParams(params []value.Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		s, ok := p.(value.String)
		if !ok {
			panic("stringParams: non-string param in test assertion")
		}
		out[i] = string(s)
	}
	return out
}
