package queries_test

import (
	"testing"

	"salesorder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetAllCustomersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetAllCustomersQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.GetAllCustomersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetAllCustomersQueryIsNotConstructed)
	})
}
