package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/specs"
)

// Kind is the dataset a query compiles against: resource or fact.
type Kind int

const (
	Resource Kind = iota
	Fact
)

func (k Kind) String() string {
	switch k {
	case Resource:
		return "resource"
	case Fact:
		return "fact"
	default:
		return "unknown"
	}
}

var (
	whitelistOnce sync.Once
	whitelistErr  error
	resourceSpec  specs.DatasetSpec
	factSpec      specs.DatasetSpec
)

func loadWhitelists() {
	whitelistOnce.Do(func() {
		resourceSpec, factSpec, whitelistErr = specs.Load()
	})
}

// mustWhitelists panics if the embedded dialect.cue fails to parse — this
// is a programming error (a malformed whitelist shipped with the binary),
// not a runtime condition any caller can recover from.
func mustWhitelists() {
	loadWhitelists()
	if whitelistErr != nil {
		panic(fmt.Sprintf("dialect: failed to load specs/dialect.cue: %v", whitelistErr))
	}
}

// SelectableColumns returns the alphabetically-ordered set of field names
// queryable as predicate targets for kind.
func SelectableColumns(k Kind) []string {
	mustWhitelists()
	var spec specs.DatasetSpec
	switch k {
	case Resource:
		spec = resourceSpec
	case Fact:
		spec = factSpec
	}
	out := append([]string{}, spec.SelectableColumns...)
	sort.Strings(out)
	return out
}

// IsSelectable reports whether col is a queryable column for kind.
func IsSelectable(k Kind, col string) bool {
	for _, c := range SelectableColumns(k) {
		if c == col {
			return true
		}
	}
	return false
}

// FieldListForError renders the selectable-column set as the
// comma-separated, alphabetically-ordered list an UnqueryableField error
// message includes so callers can see the valid alternatives.
func FieldListForError(k Kind) string {
	return strings.Join(SelectableColumns(k), ", ")
}

// JoinSQL maps a join tag to its SQL fragment for kind. Returns false for
// an unrecognized tag.
func JoinSQL(k Kind, tag fragment.JoinTag) (string, bool) {
	mustWhitelists()
	var spec specs.DatasetSpec
	switch k {
	case Resource:
		spec = resourceSpec
	case Fact:
		spec = factSpec
	}
	known := false
	for _, t := range spec.JoinTags {
		if t == string(tag) {
			known = true
			break
		}
	}
	if !known {
		return "", false
	}

	switch {
	case k == Resource && tag == fragment.Certnames:
		return "INNER JOIN certnames ON certname_catalogs.certname = certnames.name", true
	case k == Fact && tag == fragment.Certnames:
		return "INNER JOIN certnames ON certname_facts.certname = certnames.name", true
	default:
		return "", false
	}
}
