package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func wireUoW(uow *MockUoW, orderRepo *MockOrderRepository, eventRepo *MockStageEventRepository) {
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StageEventRepository").Return(eventRepo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
}

func TestSubmitOrderStageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := testStoredOrder(t, false, false)
	actor := testShopActor(t)

	cmd, err := commands.NewSubmitOrderStageCommand(stored.ID(), order.StageCancelled, actor, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	orderRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	eventRepo := new(MockStageEventRepository)
	eventRepo.On("FindRecent", mock.Anything, stored.ID(), order.TrackOrderStatus, int(order.StageCancelled), actor.ID(), mock.AnythingOfType("time.Time")).
		Return(nil, nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StageEvent")).Return(nil).Once()

	uow := new(MockUoW)
	wireUoW(uow, orderRepo, eventRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderStageCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.StageCancelled, stored.CurrentStage())
	orderRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitOrderStageCommandHandler_Handle_RetryAbsorbed(t *testing.T) {
	ctx := t.Context()
	stored := testStoredOrder(t, false, false)
	actor := testShopActor(t)

	cmd, err := commands.NewSubmitOrderStageCommand(stored.ID(), order.StageCompleted, actor, "", "")
	require.NoError(t, err)

	previous, err := order.RestoreStageEvent(
		stored.ID(), order.TrackOrderStatus, int(order.StageCompleted), 3, actor, "", time.Now().UTC(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	eventRepo := new(MockStageEventRepository)
	eventRepo.On("FindRecent", mock.Anything, stored.ID(), order.TrackOrderStatus, int(order.StageCompleted), actor.ID(), mock.AnythingOfType("time.Time")).
		Return(previous, nil).Once()

	uow := new(MockUoW)
	wireUoW(uow, orderRepo, eventRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderStageCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	eventRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitOrderStageCommandHandler_Handle_StateErrorSurfacedVerbatim(t *testing.T) {
	ctx := t.Context()
	stored := testStoredOrder(t, false, false)
	actor := testShopActor(t)

	// Stored order sits at ToWeigh; Washing skips Processing.
	cmd, err := commands.NewSubmitOrderStageCommand(stored.ID(), order.StageWashing, actor, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	eventRepo := new(MockStageEventRepository)
	eventRepo.On("FindRecent", mock.Anything, stored.ID(), order.TrackProcessing, int(order.StageWashing), actor.ID(), mock.AnythingOfType("time.Time")).
		Return(nil, nil).Once()

	uow := new(MockUoW)
	wireUoW(uow, orderRepo, eventRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderStageCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidSkip)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestSubmitOrderStageCommandHandler_Handle_PersistenceErrorRetriedOnce(t *testing.T) {
	ctx := t.Context()
	actor := testShopActor(t)

	first := testStoredOrder(t, false, false)
	second := testStoredOrder(t, false, false)

	cmd, err := commands.NewSubmitOrderStageCommand(first.ID(), order.StageCompleted, actor, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once()
	orderRepo.On("Get", mock.Anything, first.ID()).Return(second, nil).Once()
	orderRepo.On("Update", mock.Anything, second).Return(nil).Once()

	eventRepo := new(MockStageEventRepository)
	eventRepo.On("FindRecent", mock.Anything, first.ID(), order.TrackOrderStatus, int(order.StageCompleted), actor.ID(), mock.AnythingOfType("time.Time")).
		Return(nil, nil).Twice()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StageEvent")).
		Return(errs.NewPersistenceError("append stage event", errors.New("duplicate key value violates unique constraint"))).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.StageEvent")).
		Return(nil).Once()

	uow := new(MockUoW)
	wireUoW(uow, orderRepo, eventRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewSubmitOrderStageCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	factory.AssertNumberOfCalls(t, "Create", 2)
	require.Equal(t, order.StageCompleted, second.CurrentStage())
}

func TestSubmitOrderStageCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	stored := testStoredOrder(t, false, false)
	actor := testShopActor(t)

	cmd, err := commands.NewSubmitOrderStageCommand(stored.ID(), order.StageCompleted, actor, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).
		Return(nil, errs.NewObjectNotFoundError("order", stored.ID())).Once()

	eventRepo := new(MockStageEventRepository)
	uow := new(MockUoW)
	wireUoW(uow, orderRepo, eventRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderStageCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
