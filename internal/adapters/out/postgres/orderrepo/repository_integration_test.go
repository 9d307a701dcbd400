package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdispatch/internal/adapters/out/postgres/driverrepo"
	"orderdispatch/internal/adapters/out/postgres/orderrepo"
	"orderdispatch/internal/adapters/out/postgres/pgtest"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	drivers    *driverrepo.GormDriverRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.repository = orderrepo.NewGormOrderRepository(pg.DB)
	suite.drivers = driverrepo.NewGormDriverRepository(pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTripsEveryField() {
	ctx := context.Background()
	o := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Equal(o.Number(), got.Number())
	suite.Equal(order.Placed, got.Status())
	suite.Equal("30.50", got.Total().String())
	suite.Require().NotNil(got.DeliveryFee())
	suite.Equal("3.50", got.DeliveryFee().String())
	suite.Equal(*o.RestaurantID(), *got.RestaurantID())
	suite.Equal(*o.CustomerID(), *got.CustomerID())
	suite.Nil(got.Guest())
	suite.Nil(got.DriverID())
	suite.Equal("ring twice", got.Notes())

	suite.Require().Len(got.Items(), 2)
	suite.Equal("Margherita", got.Items()[0].Name)
	suite.Equal("12.50", got.Items()[0].Price.String())
	suite.Equal(2, got.Items()[0].Quantity)

	suite.Equal("1 Main St", got.DeliveryAddress().Street)
	suite.Require().NotNil(got.DeliveryAddress().Coordinates)
	suite.InDelta(40.7128, got.DeliveryAddress().Coordinates.Latitude(), 1e-9)

	suite.Require().Len(got.Steps(), 1)
	suite.Equal(order.Placed, got.Steps()[0].Kind())
	suite.Equal("Order has been placed successfully", got.Steps()[0].Message())
	suite.Equal(int64(0), got.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_GuestOrder() {
	ctx := context.Background()
	o := pgtest.NewGuestOrder(suite.T(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(got.CustomerID())
	suite.Require().NotNil(got.Guest())
	suite.Equal("gina@example.com", got.Guest().Email)
	suite.Nil(got.DeliveryAddress().Coordinates)
	suite.Nil(got.DeliveryFee())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsErrOrderNumberTaken() {
	ctx := context.Background()
	first := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	snapshot := order.Snapshot{
		ID:              second.ID(),
		Number:          first.Number(),
		Status:          second.Status(),
		Items:           second.Items(),
		Total:           second.Total(),
		CustomerID:      second.CustomerID(),
		DeliveryAddress: second.DeliveryAddress(),
		Steps:           second.Steps(),
		CreatedAt:       second.CreatedAt(),
		UpdatedAt:       second.UpdatedAt(),
	}
	clash, err := order.RestoreOrder(snapshot)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, clash)

	suite.Require().ErrorIs(err, order.ErrOrderNumberTaken)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_IncrementsVersion() {
	ctx := context.Background()
	o := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	pgtest.Advance(suite.T(), o, order.Accepted)
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(int64(1), o.Version())

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, got.Status())
	suite.Equal(int64(1), got.Version())
	suite.Len(got.Steps(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	o := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stale, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	pgtest.Advance(suite.T(), o, order.Accepted)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	pgtest.Advance(suite.T(), stale, order.Rejected)
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Equal(int64(0), stale.Version())

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	o := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_OnlyOneOfTwoStaleCopiesWins() {
	ctx := context.Background()
	o := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	pgtest.Advance(suite.T(), o, order.Accepted, order.Preparing, order.Ready)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first := pgtest.NewDriver(suite.T(), "First")
	second := pgtest.NewDriver(suite.T(), "Second")
	suite.Require().NoError(suite.drivers.Add(ctx, first))
	suite.Require().NoError(suite.drivers.Add(ctx, second))

	copyA, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	copyB, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(copyA.AssignDriver(first.ID(), first.Name(), time.Now()))
	suite.Require().NoError(copyB.AssignDriver(second.ID(), second.Name(), time.Now()))

	suite.Require().NoError(suite.repository.Claim(ctx, copyA))
	err = suite.repository.Claim(ctx, copyB)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Contains(err.Error(), "already assigned")

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, got.Status())
	suite.True(got.IsAssignedTo(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllReadyUnclaimedSince() {
	ctx := context.Background()

	ready := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	pgtest.Advance(suite.T(), ready, order.Accepted, order.Preparing, order.Ready)
	suite.Require().NoError(suite.repository.Add(ctx, ready))

	placed := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	suite.Require().NoError(suite.pg.DB.Exec(
		"UPDATE orders SET updated_at = NOW() - INTERVAL '1 hour'").Error)

	fresh := pgtest.NewPlacedOrder(suite.T(), kernel.NewUUID())
	pgtest.Advance(suite.T(), fresh, order.Accepted, order.Preparing, order.Ready)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	stale, err := suite.repository.GetAllReadyUnclaimedSince(ctx, time.Now().Add(-10*time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(ready.ID(), stale[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
