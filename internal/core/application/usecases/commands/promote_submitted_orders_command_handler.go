package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// PromotionResult reports the outcome of one sweep pass.
type PromotionResult struct {
	// Promoted is the number of orders advanced to IN_FULFILLMENT.
	Promoted int

	// Skipped is the number of orders that lost the optimistic-concurrency
	// race (canceled or mutated while the sweep was running). Skips are an
	// expected outcome, never a failure.
	Skipped int
}

// PromoteSubmittedOrdersCommandHandler is the body of the lifecycle sweep.
// It advances every SUBMITTED order to IN_FULFILLMENT using the same
// version-checked transition as interactive status updates.
//
// There is no batching atomicity: each promotion is its own conditional
// write, so the handler deliberately runs without a surrounding transaction
// and a partial sweep is a normal outcome. Orders that were concurrently
// canceled or mutated are skipped, not retried.
type PromoteSubmittedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPromoteSubmittedOrdersCommandHandler creates the sweep handler.
func NewPromoteSubmittedOrdersCommandHandler(uowFactory OrderUoWFactory) PromoteSubmittedOrdersCommandHandler {
	return PromoteSubmittedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle performs one sweep pass. Version conflicts and rows that vanished
// mid-sweep are counted as skips; any other error aborts the pass and is
// surfaced as job failure.
func (h *PromoteSubmittedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd PromoteSubmittedOrdersCommand,
) (PromotionResult, error) {
	var result PromotionResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	submitted, err := repo.GetAllInStatus(ctx, order.Submitted)
	if err != nil {
		return result, err
	}

	for _, aggregate := range submitted {
		if err = aggregate.ChangeStatus(order.InFulfillment); err != nil {
			return result, err
		}

		err = repo.Update(ctx, aggregate)
		switch {
		case err == nil:
			result.Promoted++
		case errors.Is(err, errs.ErrVersionConflict), errors.Is(err, errs.ErrObjectNotFound):
			result.Skipped++
		default:
			return result, err
		}
	}

	return result, nil
}
