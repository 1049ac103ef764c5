package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// NewOrder is the request body for creating an order. Status, timestamps and
// version cannot be supplied; the lifecycle service owns them.
type NewOrder struct {
	CustomerID string         `json:"customerId"`
	Items      []NewOrderItem `json:"items"`
}

// NewOrderItem is one requested order line.
type NewOrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// UpdateOrderStatus is the request body for forcing a status change.
type UpdateOrderStatus struct {
	Status string `json:"status"`
}

// Order is the wire representation of an order.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Version    int64       `json:"version"`
}

// OrderItem is one order line on the wire.
type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Error is the wire representation of a failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderFromAggregate(aggregate *order.Order) Order {
	domainItems := aggregate.Items()
	items := make([]OrderItem, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItem{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return Order{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		Items:      items,
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Version:    aggregate.Version(),
	}
}

func orderFromResponse(response queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return Order{
		ID:         response.ID.String(),
		CustomerID: response.CustomerID,
		Status:     response.Status.String(),
		Items:      items,
		CreatedAt:  response.CreatedAt,
		UpdatedAt:  response.UpdatedAt,
		Version:    response.Version,
	}
}
