package dialect

import (
	"github.com/queryforge/pdbquery/internal/fragment"
	"github.com/queryforge/pdbquery/internal/queryir"
	"github.com/queryforge/pdbquery/internal/value"
)

// CompiledTerm is the sum type a compiled term can return: most operators
// produce a Fragment, but select-resources/select-facts produce a
// FinalizedSelect — a complete, independent SELECT rather than a boolean
// expression fragment. Sealed to this package so a type switch on it
// stays exhaustive.
type CompiledTerm interface {
	compiledTerm() // marker method
}

// FragmentTerm wraps a fragment.Fragment as a CompiledTerm.
type FragmentTerm struct {
	fragment.Fragment
}

func (FragmentTerm) compiledTerm() {}

// FinalizedSelect is the tuple select-resources/select-facts produce: a
// complete, independent SELECT statement and its parameters. Only project
// may consume one directly; every other combinator requires a boolean
// FragmentTerm.
type FinalizedSelect struct {
	SQL    string
	Params []value.Param
}

func (FinalizedSelect) compiledTerm() {}

// CompileFunc is the signature every operator compiler implements: given
// the dialect table it was resolved from (so combinators and subquery
// operators can recurse) and the operator's argument nodes, produce a
// CompiledTerm or fail.
type CompileFunc func(table Table, args []queryir.Node) (CompiledTerm, error)

// Table is a dialect: a function from lowercased operator name to its
// compiler, or "unknown" (a missing map entry). Tables are built once — at
// package init in internal/compiler — and never mutated afterward; looking
// an operator up never changes the table.
type Table map[string]CompileFunc

// Lookup resolves op (already expected lowercase) in table, reporting
// whether it is known.
func (t Table) Lookup(op string) (CompileFunc, bool) {
	fn, ok := t[op]
	return fn, ok
}

// Name identifies one of the three dialects a query can compile against:
// resource-v1, resource-v2, or fact-v2.
type Name string

const (
	ResourceV1 Name = "resource-v1"
	ResourceV2 Name = "resource-v2"
	FactV2     Name = "fact-v2"
)

func (n Name) String() string { return string(n) }

// Kind returns the dataset kind a dialect name compiles against.
func (n Name) Kind() (Kind, bool) {
	switch n {
	case ResourceV1, ResourceV2:
		return Resource, true
	case FactV2:
		return Fact, true
	default:
		return 0, false
	}
}

// ParseName resolves a dialect flag/config value to a Name, validating it
// against the fixed set of known dialects rather than accepting it verbatim.
func ParseName(s string) (Name, bool) {
	switch Name(s) {
	case ResourceV1, ResourceV2, FactV2:
		return Name(s), true
	default:
		return "", false
	}
}

// Names lists all valid dialect names, for error messages and CLI help.
func Names() []Name {
	return []Name{ResourceV1, ResourceV2, FactV2}
}
