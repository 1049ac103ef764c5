package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromoteSubmittedOrdersCommandHandler_Handle_PromotesAll(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPromoteSubmittedOrdersCommand()

	first := storedOrder(t)
	second := storedOrder(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.Submitted).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteSubmittedOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Promoted)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, order.InFulfillment, first.Status())
	assert.Equal(t, order.InFulfillment, second.Status())
	repo.AssertExpectations(t)
}

func TestPromoteSubmittedOrdersCommandHandler_Handle_EmptySweep(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPromoteSubmittedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.Submitted).
			Return([]*order.Order{}, nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteSubmittedOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Promoted)
	assert.Equal(t, 0, result.Skipped)
}

// An order canceled or mutated between the sweep's read and its conditional
// write is skipped; the rest of the sweep still goes through.
func TestPromoteSubmittedOrdersCommandHandler_Handle_SkipsLostRaces(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPromoteSubmittedOrdersCommand()

	canceled := storedOrder(t)
	mutated := storedOrder(t)
	untouched := storedOrder(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.Submitted).
			Return([]*order.Order{canceled, mutated, untouched}, nil).Once(),
		repo.On("Update", mock.Anything, canceled).
			Return(errs.NewObjectNotFoundError("order", canceled.ID().String())).Once(),
		repo.On("Update", mock.Anything, mutated).
			Return(errs.NewVersionConflictError(mutated.ID().String(), 1)).Once(),
		repo.On("Update", mock.Anything, untouched).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteSubmittedOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Promoted)
	assert.Equal(t, 2, result.Skipped)
	repo.AssertExpectations(t)
}

func TestPromoteSubmittedOrdersCommandHandler_Handle_AbortsOnInfraError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPromoteSubmittedOrdersCommand()

	first := storedOrder(t)
	second := storedOrder(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.Submitted).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(errors.New("connection reset")).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteSubmittedOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, 0, result.Promoted)
	repo.AssertExpectations(t)
}

func TestPromoteSubmittedOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PromoteSubmittedOrdersCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewPromoteSubmittedOrdersCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
