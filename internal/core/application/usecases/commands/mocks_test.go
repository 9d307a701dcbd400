package commands_test

import (
	"context"
	"testing"
	"time"

	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/earning"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Claim(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllReadyUnclaimedSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) UpdateLocation(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockEarningRepository struct{ mock.Mock }

func (m *MockEarningRepository) Add(ctx context.Context, e *earning.DriverEarning) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEarningRepository) TotalNet(ctx context.Context, driverID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) EarningRepository() ports.EarningRepository {
	return m.Called().Get(0).(ports.EarningRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	return m.Called().Get(0).(commands.PlacementUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	return m.Called().Get(0).(commands.DriverUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return m.Called().Get(0).(commands.RestaurantUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, room ports.Room, event ports.Event, payload any) {
	m.Called(ctx, room, event, payload)
}

// Fixtures.

func newRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Luigi's", kernel.MustMoney("10.00"))
	require.NoError(t, err)
	return r
}

func newItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", kernel.MustMoney("12.00"), 1)
	require.NoError(t, err)
	return []order.Item{item}
}

func newAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	loc, err := kernel.NewLocation(40.7128, -74.006)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("1 Main St", "New York", &loc)
	require.NoError(t, err)
	return address
}

func newPlacedOrder(t *testing.T, restaurantID, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.PlaceParams{
		ID:              kernel.NewUUID(),
		Number:          order.NewOrderNumber(time.Now()),
		RestaurantID:    &restaurantID,
		CustomerID:      &customerID,
		Items:           newItems(t),
		DeliveryAddress: newAddress(t),
	}, time.Now())
	require.NoError(t, err)
	return o
}

func advanceOrder(t *testing.T, o *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		require.NoError(t, o.Transition(s, order.TransitionDetails{}, time.Now()))
	}
}

func newReadyOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPlacedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	advanceOrder(t, o, order.Accepted, order.Preparing, order.Ready)
	return o
}

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "Dave")
	require.NoError(t, err)
	return d
}

func principal(userID kernel.UUID, role kernel.Role) kernel.Principal {
	return kernel.Principal{UserID: userID, Role: role}
}
