// Package http exposes the dispatch core over REST and WebSocket with echo.
// The REST surface is generated from api/openapi.yml; Server implements the
// generated interface.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"orderdispatch/api"
	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandler is satisfied by every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// Handler is satisfied by query handlers and by commands that return a
// result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers lists the use cases the server dispatches to.
type Handlers struct {
	// Commands
	PlaceOrder           Handler[commands.PlaceOrderCommand, commands.PlaceOrderResult]
	ChangeOrderStatus    CommandHandler[commands.ChangeOrderStatusCommand]
	ClaimOrder           CommandHandler[commands.ClaimOrderCommand]
	UpdateDriverLocation CommandHandler[commands.UpdateDriverLocationCommand]
	CompleteDelivery     CommandHandler[commands.CompleteDeliveryCommand]
	RegisterDriver       CommandHandler[commands.RegisterDriverCommand]
	CreateRestaurant     CommandHandler[commands.CreateRestaurantCommand]

	// Queries
	GetOrder           Handler[queries.GetOrderQuery, queries.OrderView]
	TrackOrder         Handler[queries.TrackOrderQuery, queries.OrderView]
	GetAvailableOrders Handler[queries.GetAvailableOrdersQuery, []queries.OrderView]
	GetDriverOrders    Handler[queries.GetDriverOrdersQuery, []queries.OrderView]
	GetDriverEarnings  Handler[queries.GetDriverEarningsQuery, queries.GetDriverEarningsQueryResponse]
	GetAllDrivers      Handler[queries.GetAllDriversQuery, []queries.GetAllDriversQueryResponse]
	GetRestaurant      Handler[queries.GetRestaurantQuery, queries.RestaurantView]
}

// Server implements servers.ServerInterface and coordinates between HTTP
// handlers and application use cases.
type Server struct {
	handlers Handlers
	hub      RoomHub
	logger   *slog.Logger
}

func NewServer(handlers Handlers, hub RoomHub, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		hub:      hub,
		logger:   logger.With("component", "http_server"),
	}
}

// routeRoles lists the roles allowed on each route, keyed by method and echo
// path. An empty list admits any signed in caller; routes missing from the
// map are public.
var routeRoles = map[string][]kernel.Role{
	"GET /api/v1/orders/:id":                {},
	"PATCH /api/v1/orders/:id/status":       {},
	"GET /api/v1/drivers":                   {kernel.RoleAdmin},
	"POST /api/v1/drivers":                  {kernel.RoleAdmin},
	"GET /api/v1/drivers/available/orders":  {kernel.RoleDriver},
	"POST /api/v1/drivers/claim":            {kernel.RoleDriver},
	"POST /api/v1/drivers/accept/:orderId":  {kernel.RoleDriver},
	"POST /api/v1/drivers/location":         {kernel.RoleDriver},
	"POST /api/v1/drivers/deliver":          {kernel.RoleDriver},
	"POST /api/v1/drivers/deliver/:orderId": {kernel.RoleDriver},
	"GET /api/v1/drivers/my/orders":         {kernel.RoleDriver},
	"GET /api/v1/drivers/my/earnings":       {kernel.RoleDriver},
	"POST /api/v1/restaurants":              {kernel.RoleAdmin},
	"GET /api/v1/restaurants/:id":           {kernel.RoleRestaurant},
}

// authorize applies RequireRole with the roles routeRoles lists for the
// matched route.
func authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles, ok := routeRoles[c.Request().Method+" "+c.Path()]
		if !ok {
			return next(c)
		}
		return RequireRole(roles...)(next)(c)
	}
}

// Register mounts the generated routes, the WebSocket endpoint and the API
// document on e.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := api.Load(context.Background())
	if err != nil {
		return err
	}
	validate, err := RequestValidator(doc)
	if err != nil {
		return err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return err
	}

	e.HTTPErrorHandler = s.handleEchoError
	e.Use(Authenticate, authorize, validate)

	servers.RegisterHandlers(e, s)
	e.GET("/ws", s.WebSocket)
	e.GET("/api/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// openAPIDoc hands the loaded document to swag, which echo-swagger reads
// doc.json from.
type openAPIDoc struct {
	body string
}

func (d openAPIDoc) ReadDoc() string {
	return d.body
}

var swaggerOnce sync.Once

// registerSwaggerDoc registers the document with swag once per process;
// swag panics on a second registration under the same name.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{body: string(raw)})
	})
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, servers.Health{Ok: true})
}
