package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/testutil"
)

func TestCompileAnd(t *testing.T) {
	query := testutil.Op("and",
		testutil.Op("=", "type", "Class"),
		testutil.Op("=", "title", "apache"),
	)
	term, err := CompileTerm(ResourceV2Table, query)
	require.NoError(t, err)

	frag := term.(dialect.FragmentTerm)
	assert.Equal(t, "(catalog_resources.type = ?) AND (catalog_resources.title = ?)", frag.Where)
	assert.Equal(t, []string{"Class", "apache"}, stringParams(frag.Params))
}

func TestCompileOr(t *testing.T) {
	query := testutil.Op("or",
		testutil.Op("=", "type", "Class"),
		testutil.Op("=", "type", "File"),
	)
	term, err := CompileTerm(ResourceV2Table, query)
	require.NoError(t, err)

	frag := term.(dialect.FragmentTerm)
	assert.Equal(t, "(catalog_resources.type = ?) OR (catalog_resources.type = ?)", frag.Where)
}

func TestCompileNot(t *testing.T) {
	query := testutil.Op("not", testutil.Op("=", "type", "Class"))
	term, err := CompileTerm(ResourceV2Table, query)
	require.NoError(t, err)

	frag := term.(dialect.FragmentTerm)
	assert.Equal(t, "NOT ((catalog_resources.type = ?))", frag.Where)
}

func TestCompileNot_MultipleTermsUsesOr(t *testing.T) {
	not, err := CompileTerm(ResourceV2Table, testutil.Op("not",
		testutil.Op("=", "type", "Class"),
		testutil.Op("=", "type", "File"),
	))
	require.NoError(t, err)

	or, err := CompileTerm(ResourceV2Table, testutil.Op("or",
		testutil.Op("=", "type", "Class"),
		testutil.Op("=", "type", "File"),
	))
	require.NoError(t, err)

	notFrag := not.(dialect.FragmentTerm)
	orFrag := or.(dialect.FragmentTerm)
	assert.Equal(t, "NOT ("+orFrag.Where+")", notFrag.Where)
}

func TestCompileAnd_JoinDedup(t *testing.T) {
	query := testutil.Op("and",
		testutil.Op("=", testutil.Path("node", "active"), true),
		testutil.Op("=", testutil.Path("node", "active"), true),
	)
	term, err := CompileTerm(ResourceV2Table, query)
	require.NoError(t, err)

	frag := term.(dialect.FragmentTerm)
	require.Len(t, frag.Joins, 1)
}

func TestCompileAnd_RequiresAtLeastOneTerm(t *testing.T) {
	_, err := CompileTerm(ResourceV2Table, testutil.Op("and"))
	require.Error(t, err)
	assert.True(t, CodeIs(err, ErrMalformedQuery))
}

func TestCompileAnd_RejectsSelectChild(t *testing.T) {
	query := testutil.Op("and", testutil.Op("select-resources", testutil.Op("=", "type", "Class")))
	_, err := CompileTerm(ResourceV2Table, query)
	require.Error(t, err)
	assert.True(t, CodeIs(err, ErrMalformedQuery))
}
