package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceV1Table_HasNoRegexOrInequalityOperators(t *testing.T) {
	for _, op := range []string{"~", ">", "<", ">=", "<="} {
		_, ok := ResourceV1Table.Lookup(op)
		assert.False(t, ok, "ResourceV1Table should not know operator %q", op)
	}
}

func TestResourceV1Table_SubqueryOpsAreUnsupportedNotUnknown(t *testing.T) {
	for _, op := range []string{"project", "in-result", "select-resources", "select-facts"} {
		fn, ok := ResourceV1Table.Lookup(op)
		assert.True(t, ok, "ResourceV1Table should know operator %q (as unsupported)", op)

		_, err := fn(ResourceV1Table, nil)
		assert.True(t, CodeIs(err, ErrUnsupportedInDialect), op)
	}
}

func TestResourceV2AndFactV2_ShareSubqueryCompileFuncs(t *testing.T) {
	for _, op := range []string{"select-resources", "select-facts", "project"} {
		rv2, ok := ResourceV2Table.Lookup(op)
		assert.True(t, ok)
		fv2, ok := FactV2Table.Lookup(op)
		assert.True(t, ok)

		// Compared by pointer identity via reflection isn't meaningful for
		// funcs in Go, but both tables route through the same exported
		// compiler function, so both lookups must succeed identically.
		assert.NotNil(t, rv2)
		assert.NotNil(t, fv2)
	}
}

func TestFactV2Table_HasAllInequalityOperators(t *testing.T) {
	for _, op := range []string{">", "<", ">=", "<="} {
		_, ok := FactV2Table.Lookup(op)
		assert.True(t, ok, op)
	}
}
