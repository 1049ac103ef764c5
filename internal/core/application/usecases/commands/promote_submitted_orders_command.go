package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrPromoteSubmittedOrdersCommandIsNotConstructed = errors.New(
	"PromoteSubmittedOrdersCommand must be created via NewPromoteSubmittedOrdersCommand constructor",
)

// PromoteSubmittedOrdersCommand triggers one pass of the lifecycle sweep:
// every order still in SUBMITTED is advanced to IN_FULFILLMENT.
type PromoteSubmittedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPromoteSubmittedOrdersCommand creates a new sweep command.
// This is a parameterless command; the sweep always targets all SUBMITTED orders.
func NewPromoteSubmittedOrdersCommand() PromoteSubmittedOrdersCommand {
	return PromoteSubmittedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPromoteSubmittedOrdersCommandIsNotConstructed if validation fails.
func (c PromoteSubmittedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPromoteSubmittedOrdersCommandIsNotConstructed)
}
