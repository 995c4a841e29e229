package queries_test

import (
	"testing"

	"disbursement/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllProvidersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllProvidersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllProvidersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllProvidersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllProvidersQueryIsNotConstructed)
}
