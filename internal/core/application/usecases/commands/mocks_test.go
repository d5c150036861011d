package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockStageEventRepository struct{ mock.Mock }

func (m *MockStageEventRepository) Append(ctx context.Context, event *order.StageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStageEventRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StageEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.StageEvent), args.Error(1)
}

func (m *MockStageEventRepository) FindRecent(ctx context.Context, orderID kernel.UUID, track order.Track, value int, actorID kernel.UUID, since time.Time) (*order.StageEvent, error) {
	args := m.Called(ctx, orderID, track, value, actorID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.StageEvent), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StageEventRepository() ports.StageEventRepository {
	args := m.Called()
	return args.Get(0).(ports.StageEventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCatalogClient struct{ mock.Mock }

func (m *MockCatalogClient) GetServiceComposition(ctx context.Context, serviceID kernel.UUID) (order.ServiceComposition, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(order.ServiceComposition), args.Error(1)
}

func (m *MockCatalogClient) GetDeliveryMode(ctx context.Context, deliveryModeID kernel.UUID) (order.DeliveryMode, error) {
	args := m.Called(ctx, deliveryModeID)
	return args.Get(0).(order.DeliveryMode), args.Error(1)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, notification ports.StageNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func testComposition(t *testing.T) order.ServiceComposition {
	t.Helper()
	comp, err := order.NewServiceComposition(true, true, false, false)
	require.NoError(t, err)
	return comp
}

func testDeliveryMode(t *testing.T, pickup, delivery, fleetInHouse bool) order.DeliveryMode {
	t.Helper()
	mode, err := order.NewDeliveryMode(pickup, delivery, fleetInHouse)
	require.NoError(t, err)
	return mode
}

func testStoredOrder(t *testing.T, pickup, delivery bool) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testComposition(t), testDeliveryMode(t, pickup, delivery, false), nil, payment.MethodCash,
	)
	require.NoError(t, err)
	return o
}

func testShopActor(t *testing.T) order.Actor {
	t.Helper()
	actor, err := order.NewActor(kernel.NewUUID(), order.RoleShop)
	require.NoError(t, err)
	return actor
}
