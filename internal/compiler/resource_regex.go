package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
)

// resourceRegexFields is the bare-string field set regexp accepts for
// resources — deliberately narrower than the equality whitelist: "tags"
// is excluded here since it is handled by the "tag" array-match path
// instead.
var resourceRegexFields = sortedFields("catalog", "resource", "type", "title", "exported", "sourcefile", "sourceline")

func sortedFields(fields ...string) []string {
	out := append([]string{}, fields...)
	sort.Strings(out)
	return out
}

func isResourceRegexField(field string) bool {
	for _, f := range resourceRegexFields {
		if f == field {
			return true
		}
	}
	return false
}

// CompileResourceRegex implements the "~" operator for resources.
func CompileResourceRegex(table dialect.Table, args []queryir.Node) (dialect.CompiledTerm, error) {
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
		return nil, unqueryableField("resources", fmt.Sprintf("%v", queryir.ToAny(path)), strings.Join(resourceRegexFields, ", "))
	}

	switch bare {
	case "tag":
		where := Primitives().RegexArrayMatch("catalog_resources", "tags")
		return dialect.FragmentTerm{Fragment: fragment.Leaf(where, patternParam)}, nil
	case "certname":
		where := Primitives().RegexMatch("certname_catalogs.certname")
		return dialect.FragmentTerm{Fragment: fragment.Leaf(where, patternParam)}, nil
	default:
		if isResourceRegexField(bare) {
			where := Primitives().RegexMatch("catalog_resources." + bare)
			return dialect.FragmentTerm{Fragment: fragment.Leaf(where, patternParam)}, nil
		}
		return nil, unqueryableField("resources", bare, strings.Join(resourceRegexFields, ", "))
	}
}
