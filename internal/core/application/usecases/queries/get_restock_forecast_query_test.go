package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRestockForecastQuery_Valid(t *testing.T) {
	query, err := queries.NewGetRestockForecastQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetRestockForecastQuery_EmptyStoreID(t *testing.T) {
	_, err := queries.NewGetRestockForecastQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetRestockForecastQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRestockForecastQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRestockForecastQueryIsNotConstructed)
}
