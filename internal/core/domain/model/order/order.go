package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the purchase-order lifecycle.
//
// Invariants:
//   - id and customerID are set at creation and never change
//   - status is always one of the enumerated lifecycle values; new orders
//     start in Submitted regardless of caller input
//   - updatedAt never precedes createdAt
//   - version starts at 1 and increases by exactly one on every accepted
//     mutation, so stale writes can be detected by the store
type Order struct {
	id         kernel.UUID
	customerID string
	items      []Item
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	version    int64

	isConstructed bool
}

// NewOrder creates a new Order in Submitted status with version 1 and both
// timestamps set to the current time. The caller cannot influence status,
// timestamps or version.
func NewOrder(id kernel.UUID, customerID string, items []Item) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Submitted,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any valid status, the stored timestamps and the stored version.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("updatedAt is invalid",
			fmt.Errorf("%s precedes createdAt %s", updatedAt, createdAt))
	}

	return order, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the purchaser.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last accepted mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency counter. The store conditions
// writes on the version it previously read; see ChangeStatus.
func (o *Order) Version() int64 {
	return o.version
}

// IsCancellable reports whether the order may still be canceled.
func (o *Order) IsCancellable() bool {
	return o.status.IsCancellable()
}

// ChangeStatus overwrites the status with any valid lifecycle value, stamps
// updatedAt and increments the version. Moving backward is allowed; the model
// imposes no transition graph on updates.
//
// The version bump marks the aggregate as one mutation ahead of its persisted
// state. Repositories condition the write on Version()-1 and reject it with a
// VersionConflictError when the record changed since it was read.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
