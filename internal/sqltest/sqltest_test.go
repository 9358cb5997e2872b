package sqltest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/queryforge/pdbquery/internal/compiler"
	"github.com/queryforge/pdbquery/internal/sqltest"
	"github.com/queryforge/pdbquery/internal/testutil"
	"github.com/queryforge/pdbquery/internal/value"
)

func seedFixtures(t *testing.T, db *sqltest.DB) {
	t.Helper()
	require.NoError(t, db.Exec(`INSERT INTO certnames (name, deactivated) VALUES (?, ?)`, "web1.example.com", nil))
	require.NoError(t, db.Exec(`INSERT INTO certnames (name, deactivated) VALUES (?, ?)`, "web2.example.com", "2026-01-01T00:00:00Z"))
	require.NoError(t, db.Exec(`INSERT INTO certname_catalogs (certname, catalog) VALUES (?, ?)`, "web1.example.com", "cat1"))
	require.NoError(t, db.Exec(`INSERT INTO certname_catalogs (certname, catalog) VALUES (?, ?)`, "web2.example.com", "cat2"))
	require.NoError(t, db.Exec(
		`INSERT INTO catalog_resources (catalog, resource, type, title, tags, exported, sourcefile, sourceline)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"cat1", "res1", "Class", "apache", `["web","prod"]`, 0, "site.pp", 12,
	))
	require.NoError(t, db.Exec(
		`INSERT INTO catalog_resources (catalog, resource, type, title, tags, exported, sourcefile, sourceline)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"cat2", "res2", "Class", "nginx", `["web"]`, 0, "site.pp", 20,
	))
	require.NoError(t, db.Exec(`INSERT INTO certname_facts (certname, name, value) VALUES (?, ?, ?)`, "web1.example.com", "ipaddress", "10.0.0.1"))
	require.NoError(t, db.Exec(`INSERT INTO certname_facts (certname, name, value) VALUES (?, ?, ?)`, "web2.example.com", "ipaddress", "10.0.0.2"))
	require.NoError(t, db.Exec(`INSERT INTO certname_facts (certname, name, value) VALUES (?, ?, ?)`, "web1.example.com", "uptime_seconds", "0.3"))
}

// TestResourceEquality executes a resource-v2 type equality end-to-end
// against real rows.
func TestResourceEquality(t *testing.T) {
	db, err := sqltest.Open()
	require.NoError(t, err)
	defer db.Close()
	seedFixtures(t, db)

	query := testutil.Op("=", "type", "Class")
	sql, params, err := compiler.ResourceQueryToSQL(compiler.ResourceV2Table, query)
	require.NoError(t, err)

	rows, err := db.Query(sql, value.NativeAll(params)...)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

// TestNodeActiveJoin executes a resource query joined against certnames
// to filter deactivated nodes.
func TestNodeActiveJoin(t *testing.T) {
	db, err := sqltest.Open()
	require.NoError(t, err)
	defer db.Close()
	seedFixtures(t, db)

	query := testutil.Op("=", testutil.Path("node", "active"), true)
	sql, params, err := compiler.ResourceQueryToSQL(compiler.ResourceV2Table, query)
	require.NoError(t, err)

	rows, err := db.Query(sql, value.NativeAll(params)...)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "cat1", rows[0][1])
}

// TestFactRegexMatch executes a fact-v2 regex query against the SQLite
// REGEXP operator internal/sqltest wires to Go's regexp package.
func TestFactRegexMatch(t *testing.T) {
	db, err := sqltest.Open()
	require.NoError(t, err)
	defer db.Close()
	seedFixtures(t, db)

	query := testutil.Op("~", "name", "^ip.*")
	sql, params, err := compiler.FactQueryToSQL(compiler.FactV2Table, query)
	require.NoError(t, err)

	rows, err := db.Query(sql, value.NativeAll(params)...)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

// TestFactNumericInequality executes a numeric-cast comparison against a
// fact value stored as TEXT.
func TestFactNumericInequality(t *testing.T) {
	db, err := sqltest.Open()
	require.NoError(t, err)
	defer db.Close()
	seedFixtures(t, db)

	query := testutil.Op(">", "value", "0.2")
	sql, params, err := compiler.FactQueryToSQL(compiler.FactV2Table, query)
	require.NoError(t, err)

	rows, err := db.Query(sql, value.NativeAll(params)...)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "uptime_seconds", rows[0][1])
}

// TestInResultSubquery executes a fact query semi-joined against a
// resource subquery via in-result/project/select-resources, end-to-end.
func TestInResultSubquery(t *testing.T) {
	db, err := sqltest.Open()
	require.NoError(t, err)
	defer db.Close()
	seedFixtures(t, db)

	inner := testutil.Op("select-resources", testutil.Op("=", "title", "apache"))
	query := testutil.Op("and",
		testutil.Op("=", "name", "ipaddress"),
		testutil.Op("in-result", "certname", testutil.Op("project", "certname", inner)),
	)

	sql, params, err := compiler.FactQueryToSQL(compiler.FactV2Table, query)
	require.NoError(t, err)

	rows, err := db.Query(sql, value.NativeAll(params)...)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "web1.example.com", rows[0][0])
}

// TestArrayContainsTag executes an array-containment query against the
// JSON-encoded tags column via SQLite's json_each table-valued function.
func TestArrayContainsTag(t *testing.T) {
	db, err := sqltest.Open()
	require.NoError(t, err)
	defer db.Close()
	seedFixtures(t, db)

	query := testutil.Op("=", "tag", "web")
	sql, params, err := compiler.ResourceQueryToSQL(compiler.ResourceV2Table, query)
	require.NoError(t, err)

	rows, err := db.Query(sql, value.NativeAll(params)...)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
