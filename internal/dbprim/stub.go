package dbprim

import (
	"fmt"
	"strconv"

	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// Stub is a fixed, dialect-flavor-independent primitive set worked
// examples pin their expected SQL against: regex-match emits "<col> ~ ?",
// numeric-cast emits "CAST(<col> AS FLOAT)", array-contains emits
// "? = ANY(<col>)", and serialize is the identity function for strings.
// Tests that assert literal SQL strings use Stub rather than the SQLite
// primitives, since those strings are dialect-flavor-independent by
// construction.
type Stub struct{}

func (Stub) Serialize(n queryir.Node) (value.Param, error) {
	switch v := n.(type) {
	case queryir.Str:
		return value.String(string(v)), nil
	case queryir.Num:
		return value.Number(v), nil
	case queryir.Bool:
		return value.Bool(v), nil
	default:
		return nil, fmt.Errorf("dbprim: cannot serialize value of type %T", n)
	}
}

func (Stub) NumericCast(columnSQL string) string {
	return fmt.Sprintf("CAST(%s AS FLOAT)", columnSQL)
}

func (Stub) RegexMatch(columnSQL string) string {
	return fmt.Sprintf("%s ~ ?", columnSQL)
}

func (Stub) RegexArrayMatch(tableSQL, columnSQL string) string {
	return fmt.Sprintf("? ~ ANY(%s.%s)", tableSQL, columnSQL)
}

func (Stub) ArrayContainsMatch(columnSQL string) string {
	return fmt.Sprintf("? = ANY(%s)", columnSQL)
}

func (Stub) ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
