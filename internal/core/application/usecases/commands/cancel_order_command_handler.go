package commands

import (
	"context"

	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler implements cancellation as an atomic
// check-and-delete: the order is deleted if and only if it is still in
// SUBMITTED status at the moment of the conditional delete.
//
// The read establishes the status and version; the delete is conditioned on
// that version, so an order that concurrently left SUBMITTED can never be
// deleted. Losing that race is reported as an IllegalStateTransitionError,
// not as a retryable conflict: the order is simply no longer cancellable.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Fails with an ObjectNotFoundError when the order does not exist and with an
// IllegalStateTransitionError when it is not (or no longer) in SUBMITTED.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsCancellable() {
		return errs.NewIllegalStateTransitionError("cancel", aggregate.Status().String())
	}

	deleted, err := repo.DeleteIfVersion(ctx, cmd.OrderID(), aggregate.Version())
	if err != nil {
		return err
	}

	if !deleted {
		// Lost the race. Re-read to report what actually happened: either the
		// order was promoted out of SUBMITTED, or it vanished entirely.
		current, getErr := repo.Get(ctx, cmd.OrderID())
		if getErr != nil {
			return getErr
		}
		return errs.NewIllegalStateTransitionError("cancel", current.Status().String())
	}

	return uow.Commit(ctx)
}
