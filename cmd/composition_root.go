package cmd

import (
	"log/slog"
	"time"

	httpin "orderdispatch/internal/adapters/in/http"
	"orderdispatch/internal/adapters/out/bus"
	"orderdispatch/internal/adapters/out/postgres"
	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/ports"
	"orderdispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hub        *bus.Hub
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. publisher is the hub itself for a
// single instance, or a relay around it when notifications are shared
// through RabbitMQ.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	hub *bus.Hub,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        hub,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return commands.FactoryFunc[commands.UoW](func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = commands.FactoryFunc[commands.PlacementUoW](func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uow(), c.publisher)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.uow(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.uow(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.uow(), c.publisher)
}

func (c *CompositionRoot) CreateRepublishStaleReadyOrdersCommandHandler() commands.RepublishStaleReadyOrdersCommandHandler {
	return commands.NewRepublishStaleReadyOrdersCommandHandler(c.uow(), c.publisher)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = commands.FactoryFunc[commands.DriverUoW](func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = commands.FactoryFunc[commands.RestaurantUoW](func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

// CreateHTTPServer builds the REST and WebSocket server over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		ClaimOrder:           c.CreateClaimOrderCommandHandler(),
		UpdateDriverLocation: c.CreateUpdateDriverLocationCommandHandler(),
		CompleteDelivery:     c.CreateCompleteDeliveryCommandHandler(),
		RegisterDriver:       c.CreateRegisterDriverCommandHandler(),
		CreateRestaurant:     c.CreateCreateRestaurantCommandHandler(),

		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		TrackOrder:         queries.NewTrackOrderQueryHandler(c.gormDB),
		GetAvailableOrders: queries.NewGetAvailableOrdersQueryHandler(c.gormDB),
		GetDriverOrders:    queries.NewGetDriverOrdersQueryHandler(c.gormDB),
		GetDriverEarnings:  queries.NewGetDriverEarningsQueryHandler(c.gormDB),
		GetAllDrivers:      queries.NewGetAllDriversQueryHandler(c.gormDB),
		GetRestaurant:      queries.NewGetRestaurantQueryHandler(c.gormDB),
	}, c.hub, c.logger)
}

// CreateJobManager registers the background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	staleAfter := c.config.StaleReadyAfter
	if staleAfter <= 0 {
		staleAfter = 10 * time.Minute
	}
	cmd, err := commands.NewRepublishStaleReadyOrdersCommand(staleAfter)
	if err != nil {
		return nil, err
	}

	staleJob := jobs.NewStaleReadyOrdersJob(
		c.CreateRepublishStaleReadyOrdersCommandHandler(),
		cmd,
		c.config.StaleReadySchedule,
		c.logger,
	)
	return jobs.NewJobManager().Add("stale ready orders", staleJob), nil
}
