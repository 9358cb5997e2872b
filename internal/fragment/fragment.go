// Package fragment defines the compiled-fragment algebra: the partial SQL
// value boolean and subquery operator compilers combine as they walk a
// query AST.
package fragment

import "github.com/queryforge/pdbquery/internal/value"

// JoinTag names an extra table the finalizer must bring into the FROM
// clause for a fragment's where expression to resolve. The set of valid
// tags is dataset-kind-specific and enforced by internal/querysql, not
// here — Fragment itself just carries an ordered, deduplicated bag of
// whatever tags its producer attached.
type JoinTag string

// Certnames is the one join tag currently defined; the set is open for
// future join-bearing fields.
const Certnames JoinTag = "certnames"

// Fragment is a partial compiled SQL value: a boolean expression usable
// directly after WHERE, the join tables it depends on, and the positional
// parameters its placeholders bind to, in order.
//
// Every Fragment is produced fresh; nothing here is mutated in place once
// constructed.
type Fragment struct {
	Where  string
	Joins  []JoinTag
	Params []value.Param
}

// New builds a Fragment from its three parts, deduplicating Joins.
func New(where string, joins []JoinTag, params []value.Param) Fragment {
	return Fragment{Where: where, Joins: dedupJoins(joins), Params: params}
}

// Leaf builds a Fragment for a predicate with no join requirement.
func Leaf(where string, params ...value.Param) Fragment {
	return Fragment{Where: where, Params: params}
}

// WithJoin returns a copy of f with tag appended to its join set
// (deduplicated).
func (f Fragment) WithJoin(tag JoinTag) Fragment {
	return Fragment{
		Where:  f.Where,
		Joins:  dedupJoins(append(append([]JoinTag{}, f.Joins...), tag)),
		Params: f.Params,
	}
}

// dedupJoins removes duplicate tags while preserving first-appearance
// order — the join assembler must never emit the same JOIN twice.
func dedupJoins(tags []JoinTag) []JoinTag {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[JoinTag]bool, len(tags))
	out := make([]JoinTag, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// MergeJoins unions several join slices, preserving first-appearance order
// across the slices in argument order and deduplicating globally. Used by
// boolean combinators to combine their children's join requirements.
func MergeJoins(joinLists ...[]JoinTag) []JoinTag {
	var all []JoinTag
	for _, js := range joinLists {
		all = append(all, js...)
	}
	return dedupJoins(all)
}
