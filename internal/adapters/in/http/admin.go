package http

import (
	"net/http"

	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/generated/servers"
	"orderdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetAllDrivers handles GET /api/v1/drivers.
func (s *Server) GetAllDrivers(c echo.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(c.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, drivers)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(c echo.Context) error {
	var req servers.RegisterDriverJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, err := uuidOf("userId", req.UserId)
	if err != nil {
		return s.fail(c, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, userID, req.Name)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.RegisterDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.CreatedResource{Id: driverID.Bytes()})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var req servers.CreateRestaurantJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	ownerID, err := uuidOf("ownerId", req.OwnerId)
	if err != nil {
		return s.fail(c, err)
	}
	minOrder := kernel.ZeroMoney
	if req.MinOrderAmount != nil {
		minOrder = *req.MinOrderAmount
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, ownerID, req.Name, minOrder)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CreateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.CreatedResource{Id: restaurantID.Bytes()})
}

// GetRestaurant handles GET /api/v1/restaurants/{id}. Owners see their own
// restaurant and admins see any.
func (s *Server) GetRestaurant(c echo.Context, id servers.Id) error {
	restaurantID, err := uuidOf("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	principal, _ := PrincipalFrom(c)
	if !principal.IsAdmin() && !view.IsOwnedBy(principal.UserID) {
		return s.fail(c, errs.NewForbiddenError("view restaurant", "not your restaurant"))
	}
	return c.JSON(http.StatusOK, view)
}
