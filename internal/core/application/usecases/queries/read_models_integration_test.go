package queries_test

import (
	"context"
	"testing"
	"time"

	"orderdispatch/internal/adapters/out/postgres/driverrepo"
	"orderdispatch/internal/adapters/out/postgres/earningrepo"
	"orderdispatch/internal/adapters/out/postgres/orderrepo"
	"orderdispatch/internal/adapters/out/postgres/pgtest"
	"orderdispatch/internal/adapters/out/postgres/restaurantrepo"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/earning"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ReadModelsTestSuite struct {
	suite.Suite
	pg *pgtest.Database

	restaurant *restaurant.Restaurant
	driver     *driver.Driver
}

func (suite *ReadModelsTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ReadModelsTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *ReadModelsTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	ctx := context.Background()
	suite.restaurant = pgtest.NewRestaurant(suite.T(), "Luigi's")
	suite.Require().NoError(restaurantrepo.NewGormRestaurantRepository(suite.pg.DB).Add(ctx, suite.restaurant))
	suite.driver = pgtest.NewDriver(suite.T(), "Dana")
	suite.Require().NoError(driverrepo.NewGormDriverRepository(suite.pg.DB).Add(ctx, suite.driver))
}

func (suite *ReadModelsTestSuite) saveOrder(o *order.Order) {
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB).Add(context.Background(), o))
}

func (suite *ReadModelsTestSuite) readyOrder() *order.Order {
	o := pgtest.NewPlacedOrder(suite.T(), suite.restaurant.ID())
	pgtest.Advance(suite.T(), o, order.Accepted, order.Preparing, order.Ready)
	return o
}

// deliveredOrder stores an order delivered by the suite driver together with
// its ledger row.
func (suite *ReadModelsTestSuite) deliveredOrder() *order.Order {
	o := suite.readyOrder()
	now := time.Now()
	suite.Require().NoError(o.AssignDriver(suite.driver.ID(), suite.driver.Name(), now))
	suite.Require().NoError(o.Deliver(suite.driver.ID(), "", "", now))
	suite.saveOrder(o)

	entry, err := earning.NewDriverEarning(kernel.NewUUID(), suite.driver.ID(), o.ID(), o.DeliveryFee(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(earningrepo.NewGormEarningRepository(suite.pg.DB).Add(context.Background(), entry))
	return o
}

func (suite *ReadModelsTestSuite) TestGetOrder_CustomerSeesFullView() {
	o := pgtest.NewPlacedOrder(suite.T(), suite.restaurant.ID())
	suite.saveOrder(o)

	query, err := queries.NewGetOrderQuery(o.ID(), kernel.Principal{UserID: *o.CustomerID(), Role: kernel.RoleCustomer})
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), view.ID)
	suite.Equal(o.Number(), view.OrderNumber)
	suite.Equal("placed", view.Status)
	suite.Equal("30.50", view.Total.String())
	suite.Require().NotNil(view.DeliveryFee)
	suite.Equal("3.50", view.DeliveryFee.String())
	suite.Require().Len(view.Items, 2)
	suite.Equal("Margherita", view.Items[0].Name)
	suite.Equal("12.50", view.Items[0].Price.String())
	suite.Require().NotNil(view.Restaurant)
	suite.Equal("Luigi's", view.Restaurant.Name)
	suite.Nil(view.Driver)
	suite.Nil(view.GuestInfo)
	suite.Require().NotNil(view.DeliveryAddress.Coordinates)
	suite.InDelta(40.7128, view.DeliveryAddress.Coordinates.Latitude, 1e-9)
	suite.Require().Len(view.Steps, 1)
	suite.Equal("Order has been placed successfully", view.Steps[0].Message)
}

func (suite *ReadModelsTestSuite) TestGetOrder_PartiesAndStrangers() {
	o := suite.deliveredOrder()
	handler := queries.NewGetOrderQueryHandler(suite.pg.DB)

	tests := []struct {
		name      string
		principal kernel.Principal
		allowed   bool
	}{
		{"customer", kernel.Principal{UserID: *o.CustomerID(), Role: kernel.RoleCustomer}, true},
		{"restaurant owner", kernel.Principal{UserID: suite.restaurant.OwnerID(), Role: kernel.RoleRestaurant}, true},
		{"assigned driver", kernel.Principal{UserID: suite.driver.UserID(), Role: kernel.RoleDriver}, true},
		{"admin", kernel.Principal{UserID: kernel.NewUUID(), Role: kernel.RoleAdmin}, true},
		{"another customer", kernel.Principal{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}, false},
		{"another driver", kernel.Principal{UserID: kernel.NewUUID(), Role: kernel.RoleDriver}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewGetOrderQuery(o.ID(), tt.principal)
			suite.Require().NoError(err)

			view, err := handler.Handle(context.Background(), query)

			if tt.allowed {
				suite.Require().NoError(err)
				suite.Require().NotNil(view.Driver)
				suite.Equal("Dana", view.Driver.Name)
				suite.NotNil(view.DeliveredAt)
				return
			}
			suite.Require().ErrorIs(err, errs.ErrForbidden)
		})
	}
}

func (suite *ReadModelsTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.Principal{UserID: kernel.NewUUID(), Role: kernel.RoleAdmin})
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsTestSuite) TestTrackOrder() {
	o := pgtest.NewGuestOrder(suite.T(), suite.restaurant.ID())
	suite.saveOrder(o)
	handler := queries.NewTrackOrderQueryHandler(suite.pg.DB)

	suite.Run("anonymous guest", func() {
		query, err := queries.NewTrackOrderQuery(o.Number(), nil)
		suite.Require().NoError(err)

		view, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().NotNil(view.GuestInfo)
		suite.Equal("Gina", view.GuestInfo.Name)
		suite.Nil(view.UserID)
		suite.Nil(view.DeliveryAddress.Coordinates)
	})

	suite.Run("signed in stranger", func() {
		stranger := kernel.Principal{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}
		query, err := queries.NewTrackOrderQuery(o.Number(), &stranger)
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().ErrorIs(err, errs.ErrForbidden)
	})

	suite.Run("unknown number", func() {
		query, err := queries.NewTrackOrderQuery("ORD-19990101-0000", nil)
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *ReadModelsTestSuite) TestGetAvailableOrders_ReadyAndUnclaimedOldestFirst() {
	first := suite.readyOrder()
	suite.saveOrder(first)
	second := suite.readyOrder()
	suite.saveOrder(second)
	suite.saveOrder(pgtest.NewPlacedOrder(suite.T(), suite.restaurant.ID()))
	suite.deliveredOrder()

	views, err := queries.NewGetAvailableOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(first.ID(), views[0].ID)
	suite.Equal(second.ID(), views[1].ID)
	suite.Equal("Luigi's", views[0].Restaurant.Name)
}

func (suite *ReadModelsTestSuite) TestGetAvailableOrders_Empty() {
	views, err := queries.NewGetAvailableOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *ReadModelsTestSuite) TestGetDriverOrders() {
	older := suite.deliveredOrder()
	active := suite.readyOrder()
	suite.Require().NoError(active.AssignDriver(suite.driver.ID(), suite.driver.Name(), time.Now()))
	suite.saveOrder(active)
	suite.saveOrder(suite.readyOrder())

	handler := queries.NewGetDriverOrdersQueryHandler(suite.pg.DB)

	suite.Run("all statuses newest first", func() {
		query, err := queries.NewGetDriverOrdersQuery(suite.driver.UserID(), nil)
		suite.Require().NoError(err)

		views, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(views, 2)
		suite.Equal(active.ID(), views[0].ID)
		suite.Equal(older.ID(), views[1].ID)
	})

	suite.Run("filtered by status", func() {
		status := order.PickedUp
		query, err := queries.NewGetDriverOrdersQuery(suite.driver.UserID(), &status)
		suite.Require().NoError(err)

		views, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(views, 1)
		suite.Equal("picked_up", views[0].Status)
	})

	suite.Run("user without a driver profile", func() {
		query, err := queries.NewGetDriverOrdersQuery(kernel.NewUUID(), nil)
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *ReadModelsTestSuite) TestGetDriverEarnings() {
	first := suite.deliveredOrder()
	second := suite.deliveredOrder()

	// The running counter is maintained by the delivery command; set it here
	// the way that command would.
	suite.Require().NoError(suite.pg.DB.Exec(
		`UPDATE drivers SET total_deliveries = 2, total_earnings = 5.60 WHERE id = ?`, suite.driver.ID().Bytes(),
	).Error)

	query, err := queries.NewGetDriverEarningsQuery(suite.driver.UserID())
	suite.Require().NoError(err)

	summary, err := queries.NewGetDriverEarningsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("5.60", summary.TotalEarnings.String())
	suite.Equal(2, summary.TotalDeliveries)
	suite.Require().Len(summary.Earnings, 2)

	numbers := []string{summary.Earnings[0].Order.OrderNumber, summary.Earnings[1].Order.OrderNumber}
	suite.ElementsMatch([]string{first.Number(), second.Number()}, numbers)
	for _, e := range summary.Earnings {
		suite.Equal("3.50", e.TotalEarning.String())
		suite.Equal("0.70", e.PlatformFee.String())
		suite.Equal("2.80", e.NetEarning.String())
		suite.Equal("USD", e.Currency)
		suite.Equal("30.50", e.Order.Total.String())
		suite.NotNil(e.Order.DeliveredAt)
	}
}

func (suite *ReadModelsTestSuite) TestGetDriverEarnings_NoDeliveries() {
	query, err := queries.NewGetDriverEarningsQuery(suite.driver.UserID())
	suite.Require().NoError(err)

	summary, err := queries.NewGetDriverEarningsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(summary.TotalEarnings.IsZero())
	suite.Empty(summary.Earnings)
}

func (suite *ReadModelsTestSuite) TestGetAllDrivers_OrderedByName() {
	ctx := context.Background()
	repo := driverrepo.NewGormDriverRepository(suite.pg.DB)

	alice := pgtest.NewDriver(suite.T(), "Alice")
	location, err := kernel.NewLocation(51.5, -0.12)
	suite.Require().NoError(err)
	suite.Require().NoError(alice.UpdateLocation(location, time.Now()))
	suite.Require().NoError(repo.Add(ctx, alice))

	drivers, err := queries.NewGetAllDriversQueryHandler(suite.pg.DB).Handle(ctx, queries.NewGetAllDriversQuery())

	suite.Require().NoError(err)
	suite.Require().Len(drivers, 2)
	suite.Equal("Alice", drivers[0].Name)
	suite.Equal(alice.ID(), drivers[0].ID)
	suite.Require().NotNil(drivers[0].Location)
	suite.InDelta(51.5, drivers[0].Location.Latitude, 1e-9)
	suite.NotNil(drivers[0].LastLocationUpdate)
	suite.Equal("Dana", drivers[1].Name)
	suite.Nil(drivers[1].Location)
	suite.True(drivers[1].IsAvailable)
}

func (suite *ReadModelsTestSuite) TestGetAllDrivers_InvalidQuery() {
	drivers, err := queries.NewGetAllDriversQueryHandler(suite.pg.DB).Handle(context.Background(), queries.GetAllDriversQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAllDriversQueryIsNotConstructed)
	suite.Nil(drivers)
}

func (suite *ReadModelsTestSuite) TestGetRestaurant() {
	query, err := queries.NewGetRestaurantQuery(suite.restaurant.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetRestaurantQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.restaurant.ID(), view.ID)
	suite.Equal(suite.restaurant.OwnerID(), view.OwnerID)
	suite.Equal("Luigi's", view.Name)
	suite.True(view.IsOwnedBy(suite.restaurant.OwnerID()))
	suite.False(view.IsOwnedBy(kernel.NewUUID()))
}

func (suite *ReadModelsTestSuite) TestGetRestaurant_NotFound() {
	query, err := queries.NewGetRestaurantQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetRestaurantQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queries.NewGetAvailableOrdersQueryHandler(suite.pg.DB).Handle(ctx, queries.NewGetAvailableOrdersQuery())

	suite.Require().Error(err)
}

func TestReadModelsTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelsTestSuite))
}
