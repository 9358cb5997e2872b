// Package testutil provides shared test helpers: golden-file snapshots for
// finalized SQL statements, and small builders for constructing query ASTs
// in test code without repeating queryir.List/Str literals.
package testutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/queryforge/pdbquery/internal/value"
)

// CompiledSnapshot is the canonical shape a golden file captures: the
// finalized SQL plus its bound parameters, in order.
type CompiledSnapshot struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
}

// AssertGolden compares (sql, params) against testdata/golden/{name}.golden.
//
// To regenerate golden files, run the tests of the package that calls
// AssertGolden with the -update flag (only packages that link goldie
// accept it), e.g.:
//
//	go test ./internal/compiler/... -update
func AssertGolden(t *testing.T, name string, sql string, params []value.Param) {
	t.Helper()

	snapshot := CompiledSnapshot{SQL: sql, Params: value.NativeAll(params)}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		t.Fatalf("testutil: marshaling snapshot: %v", err)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
