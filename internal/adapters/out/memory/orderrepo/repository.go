// Package orderrepo implements ports.OrderRepository on a mutex-guarded map.
package orderrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// orderRecord is an immutable snapshot of an aggregate's state. Records are
// copied on the way in and out so callers can never mutate stored state
// behind the repository's back.
type orderRecord struct {
	id         kernel.UUID
	customerID string
	items      []order.Item
	status     order.Status
	createdAt  time.Time
	updatedAt  time.Time
	version    int64
}

func newRecord(aggregate *order.Order) orderRecord {
	return orderRecord{
		id:         aggregate.ID(),
		customerID: aggregate.CustomerID(),
		items:      aggregate.Items(),
		status:     aggregate.Status(),
		createdAt:  aggregate.CreatedAt(),
		updatedAt:  aggregate.UpdatedAt(),
		version:    aggregate.Version(),
	}
}

func (r orderRecord) toAggregate() (*order.Order, error) {
	return order.RestoreOrder(
		r.id, r.customerID, r.items, r.status, r.createdAt, r.updatedAt, r.version)
}

// Repository is an in-memory order store. Each exported method is atomic
// under the repository mutex, which gives the conditional update and delete
// the same linearizability the postgres adapter gets from its WHERE clauses.
type Repository struct {
	mu      sync.RWMutex
	records map[string]orderRecord
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{records: make(map[string]orderRecord)}
}

// Add stores a new order. Fails when the identifier is already taken.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.records[key]; exists {
		return fmt.Errorf("order %s already exists", key)
	}

	r.records[key] = newRecord(aggregate)
	return nil
}

// Update applies a mutation conditioned on the version the aggregate was
// read with (its current version minus one).
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	stored, exists := r.records[key]
	if !exists {
		return errs.NewObjectNotFoundError("order", key)
	}

	expectedVersion := aggregate.Version() - 1
	if stored.version != expectedVersion {
		return errs.NewVersionConflictError(key, expectedVersion)
	}

	r.records[key] = newRecord(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	record, exists := r.records[id.String()]
	r.mu.RUnlock()

	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return record.toAggregate()
}

// GetAll retrieves every stored order, sorted by ID for stable listings.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.collect(ctx, func(orderRecord) bool { return true })
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *Repository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.collect(ctx, func(record orderRecord) bool { return record.status == status })
}

// DeleteIfVersion atomically removes the record when its stored version still
// matches. Returns whether the delete happened.
func (r *Repository) DeleteIfVersion(_ context.Context, id kernel.UUID, version int64) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	stored, exists := r.records[key]
	if !exists || stored.version != version {
		return false, nil
	}

	delete(r.records, key)
	return true, nil
}

func (r *Repository) collect(_ context.Context, match func(orderRecord) bool) ([]*order.Order, error) {
	r.mu.RLock()
	records := make([]orderRecord, 0, len(r.records))
	for _, record := range r.records {
		if match(record) {
			records = append(records, record)
		}
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].id.String() < records[j].id.String()
	})

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		aggregate, err := record.toAggregate()
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
