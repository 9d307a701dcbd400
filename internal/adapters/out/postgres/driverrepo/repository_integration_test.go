package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdispatch/internal/adapters/out/postgres/driverrepo"
	"orderdispatch/internal/adapters/out/postgres/pgtest"
	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.repository = driverrepo.NewGormDriverRepository(pg.DB)
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_AndGetByUserID() {
	ctx := context.Background()
	d := pgtest.NewDriver(suite.T(), "Dave")

	suite.Require().NoError(suite.repository.Add(ctx, d))

	got, err := suite.repository.GetByUserID(ctx, d.UserID())
	suite.Require().NoError(err)
	suite.Equal(d.ID(), got.ID())
	suite.Equal("Dave", got.Name())
	suite.True(got.IsAvailable())
	suite.Nil(got.Location())
	suite.True(got.TotalEarnings().IsZero())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_SecondProfileForUser_ReturnsConflict() {
	ctx := context.Background()
	d := pgtest.NewDriver(suite.T(), "Dave")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	twin, err := driver.NewDriver(kernel.NewUUID(), d.UserID(), "Dave again")
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Add(ctx, twin), errs.ErrConflict)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_VersionGuard() {
	ctx := context.Background()
	d := pgtest.NewDriver(suite.T(), "Dave")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	stale, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(d.TakeOrder(nil, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, d))
	suite.Equal(int64(1), d.Version())

	suite.Require().NoError(stale.TakeOrder(nil, time.Now()))
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdateLocation_LeavesVersionAlone() {
	ctx := context.Background()
	d := pgtest.NewDriver(suite.T(), "Dave")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loc, err := kernel.NewLocation(51.5074, -0.1278)
	suite.Require().NoError(err)
	suite.Require().NoError(d.UpdateLocation(loc, time.Now()))
	suite.Require().NoError(suite.repository.UpdateLocation(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Location())
	suite.InDelta(51.5074, got.Location().Latitude(), 1e-9)
	suite.NotNil(got.LastLocationUpdate())
	suite.Equal(int64(0), got.Version())

	// a versioned write loaded before the location report still succeeds
	suite.Require().NoError(d.TakeOrder(nil, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, d))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByUserID(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
