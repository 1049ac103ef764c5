package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should create unfiltered query", func(t *testing.T) {
		query := queries.NewListOrdersQuery()

		require.NoError(t, query.Validate())
		assert.Nil(t, query.Status())
	})
}

func TestNewListOrdersQueryWithStatus(t *testing.T) {
	t.Run("should create filtered query", func(t *testing.T) {
		query, err := queries.NewListOrdersQueryWithStatus(order.Shipped)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Shipped, *query.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := queries.NewListOrdersQueryWithStatus(order.Unknown)

		require.Error(t, err)
	})
}

func TestListOrdersQuery_Validate(t *testing.T) {
	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.ListOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrListOrdersQueryIsNotConstructed, err)
	})
}
