package compiler

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseFolder performs locale-independent lowercasing, used to canonicalize
// tag values the same way storage does. A package-level cases.Caser is
// safe for concurrent use and avoids re-deriving the Unicode lowering
// tables on every tag predicate compiled.
var caseFolder = cases.Lower(language.Und)

func caseFoldLower(s string) string {
	return caseFolder.String(s)
}
