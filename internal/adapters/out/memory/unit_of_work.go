// Package memory provides an in-process implementation of the order store.
// It backs unit tests and lets the service run without a database; the
// repository applies the same version-conditioned write semantics as the
// postgres adapter, guarded by a mutex instead of SQL predicates.
package memory

import (
	"context"

	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/ports"
)

// UnitOfWorkFactory hands out units of work sharing one in-memory repository.
type UnitOfWorkFactory struct {
	repository *orderrepo.Repository
}

// NewUnitOfWorkFactory creates a factory over the given repository.
func NewUnitOfWorkFactory(repository *orderrepo.Repository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repository: repository}
}

// Create produces a new UnitOfWork sharing the factory's repository.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repository: f.repository}
}

// UnitOfWork satisfies the transaction contract without transactional
// behavior: every repository operation is individually atomic under the
// store's mutex, which is exactly the granularity the lifecycle core relies
// on (single-record conditional writes, no cross-record atomicity).
type UnitOfWork struct {
	repository *orderrepo.Repository
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns the shared in-memory repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.repository
}
