package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves all orders, optionally narrowed to one status.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query that returns every stored order.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersQueryWithStatus creates a query that returns only the orders
// currently in the given status.
func NewListOrdersQueryWithStatus(status order.Status) (ListOrdersQuery, error) {
	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := query.setStatus(status); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when no filter was set.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *ListOrdersQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = &status
	return nil
}
