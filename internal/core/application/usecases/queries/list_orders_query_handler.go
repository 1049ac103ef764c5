package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders from the database, optionally
// filtered by status. Results are sorted by order ID so the listing is
// stable within a single call.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Without a filter it returns every order in the
// store; with one it returns exactly the subset matching that status.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at,
			version
		FROM orders
	`

	var rows []orderRow
	tx := h.db.WithContext(ctx)
	if status := query.Status(); status != nil {
		tx = tx.Raw(baseQuery+`WHERE status = ? ORDER BY id`, int(*status))
	} else {
		tx = tx.Raw(baseQuery + `ORDER BY id`)
	}

	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}

		items, err := loadItems(ctx, h.db, response.ID)
		if err != nil {
			return nil, err
		}
		response.Items = items

		orders = append(orders, response)
	}

	return orders, nil
}
