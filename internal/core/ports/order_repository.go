// Package ports defines the contracts between the lifecycle core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
//
// All writes are conditioned on the aggregate's version so that two actors
// racing on the same record (an interactive request and the background sweep)
// can never both win. Implementations must make Update and DeleteIfVersion
// atomic with respect to each other for a given record.
type OrderRepository interface {
	// Add persists a new order aggregate. The aggregate must be valid and
	// carry a fresh identifier not yet present in storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a mutated aggregate, conditioned on the version the
	// aggregate was loaded with (its current version minus the pending bump).
	// Returns a VersionConflictError when the stored version differs and an
	// ObjectNotFoundError when the record no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order. Ordering is store-defined but
	// stable within a single call.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// The background sweep uses it to collect SUBMITTED orders.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// DeleteIfVersion atomically deletes the record if and only if its stored
	// version equals the given one. Returns whether the delete happened; a
	// false result with a nil error means the record is gone or has moved on.
	DeleteIfVersion(ctx context.Context, id kernel.UUID, version int64) (bool, error)
}
