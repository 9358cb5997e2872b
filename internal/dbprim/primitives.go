// Package dbprim defines the host-provided database primitives the
// compiler treats as external collaborators: value serialization, numeric
// casting, and the regex/array-membership SQL fragments whose exact shape
// is dialect-specific and therefore not specified by the compiler itself.
package dbprim

import (
	"fmt"
	"strconv"

	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// Primitives is the set of host-provided building blocks the compiler's
// leaf predicates call into. Exactly one ? placeholder appears in the
// fragments RegexMatch/RegexArrayMatch/ArrayContainsMatch return.
type Primitives interface {
	// Serialize turns an arbitrary operand value into a scalar bound
	// parameter (used for resource parameter values).
	Serialize(n queryir.Node) (value.Param, error)

	// NumericCast returns a SQL expression coercing columnSQL to a
	// numeric type (or NULL on failure).
	NumericCast(columnSQL string) string

	// RegexMatch returns the "<col> <op> ?" form for this database's
	// regex operator.
	RegexMatch(columnSQL string) string

	// RegexArrayMatch returns a regex match against any element of an
	// array-typed column.
	RegexArrayMatch(tableSQL, columnSQL string) string

	// ArrayContainsMatch returns a membership test against an
	// array-typed column, binding one ? as the candidate.
	ArrayContainsMatch(columnSQL string) string

	// ParseNumber leniently parses a string as a number.
	ParseNumber(s string) (float64, bool)
}

// SQLite is the production Primitives implementation, targeting the
// schema internal/sqltest stands up: array-typed columns (tags) are stored
// as JSON text and matched via SQLite's json_each table-valued function;
// regex matching uses the REGEXP operator, which internal/sqltest wires to
// Go's regexp package through a custom SQLite function (mattn/go-sqlite3
// supports user-defined SQL functions; SQLite's built-in REGEXP operator
// dispatches to a function literally named "regexp").
type SQLite struct{}

func (SQLite) Serialize(n queryir.Node) (value.Param, error) {
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

// NumericCast yields NULL for text that is not a complete number: a bare
// CAST would read the numeric prefix instead ("10.0.0.1" becomes 10.0).
func (SQLite) NumericCast(columnSQL string) string {
	return fmt.Sprintf(
		"(CASE WHEN json_valid(%[1]s) THEN (CASE WHEN json_type(%[1]s) IN ('integer', 'real') THEN CAST(%[1]s AS FLOAT) END) END)",
		columnSQL,
	)
}

func (SQLite) RegexMatch(columnSQL string) string {
	return fmt.Sprintf("%s REGEXP ?", columnSQL)
}

func (SQLite) RegexArrayMatch(tableSQL, columnSQL string) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM json_each(%s.%s) WHERE json_each.value REGEXP ?)",
		tableSQL, columnSQL,
	)
}

func (SQLite) ArrayContainsMatch(columnSQL string) string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s) WHERE json_each.value = ?)", columnSQL)
}

func (SQLite) ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
