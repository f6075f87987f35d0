package queries_test

import (
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchServiceOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewSearchServiceOrdersQuery("washing machine", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, "washing machine", query.Text())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.Limit())
	require.NoError(t, query.Validate())
}

func TestNewSearchServiceOrdersQuery_TrimsText(t *testing.T) {
	query, err := queries.NewSearchServiceOrdersQuery("  Acme  ", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, "Acme", query.Text())
}

func TestNewSearchServiceOrdersQuery_BlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := queries.NewSearchServiceOrdersQuery(text, 1, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	}
}

func TestNewSearchServiceOrdersQuery_TextTooShort(t *testing.T) {
	for _, text := range []string{"a", " 7 ", "é"} {
		_, err := queries.NewSearchServiceOrdersQuery(text, 1, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewSearchServiceOrdersQuery_InvalidPagination(t *testing.T) {
	_, err := queries.NewSearchServiceOrdersQuery("Acme", 0, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewSearchServiceOrdersQuery("Acme", 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewSearchServiceOrdersQuery("Acme", 1, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestSearchServiceOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.SearchServiceOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSearchServiceOrdersQueryIsNotConstructed)
}
