package http

import (
	"net/http"

	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetAvailableOrders handles GET /api/v1/drivers/available/orders.
func (s *Server) GetAvailableOrders(c echo.Context) error {
	views, err := s.handlers.GetAvailableOrders.Handle(c.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// ClaimOrder handles POST /api/v1/drivers/claim.
func (s *Server) ClaimOrder(c echo.Context) error {
	var req servers.ClaimOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	return s.claim(c, req.OrderId)
}

// AcceptOrder handles POST /api/v1/drivers/accept/{orderId}, the path form
// of ClaimOrder.
func (s *Server) AcceptOrder(c echo.Context, orderId servers.OrderId) error {
	return s.claim(c, orderId)
}

func (s *Server) claim(c echo.Context, rawOrderID openapi_types.UUID) error {
	orderID, err := uuidOf("orderId", rawOrderID)
	if err != nil {
		return s.fail(c, err)
	}
	principal, _ := PrincipalFrom(c)

	cmd, err := commands.NewClaimOrderCommand(principal.UserID, orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.ClaimOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, orderID, principal)
}

// UpdateDriverLocation handles POST /api/v1/drivers/location.
func (s *Server) UpdateDriverLocation(c echo.Context) error {
	var req servers.UpdateDriverLocationJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	var rawOrderID string
	if req.OrderId != nil {
		rawOrderID = req.OrderId.String()
	}
	principal, _ := PrincipalFrom(c)

	cmd, err := newLocationCommand(principal, req.Latitude, req.Longitude, rawOrderID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.UpdateDriverLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.DriverLocation{Latitude: req.Latitude, Longitude: req.Longitude})
}

// newLocationCommand is shared with the driver_location WebSocket message,
// which carries the order id as text.
func newLocationCommand(
	principal kernel.Principal,
	latitude, longitude float64,
	rawOrderID string,
) (commands.UpdateDriverLocationCommand, error) {
	var orderID *kernel.UUID
	if rawOrderID != "" {
		id, err := kernel.UUIDFromString(rawOrderID)
		if err != nil {
			return commands.UpdateDriverLocationCommand{}, err
		}
		orderID = &id
	}
	return commands.NewUpdateDriverLocationCommand(principal.UserID, latitude, longitude, orderID)
}

// CompleteDelivery handles POST /api/v1/drivers/deliver.
func (s *Server) CompleteDelivery(c echo.Context) error {
	var req servers.CompleteDeliveryJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	details := servers.DeliveryDetails{DeliveryNote: req.DeliveryNote, DeliveryPhoto: req.DeliveryPhoto}
	return s.deliver(c, req.OrderId, details)
}

// CompleteDeliveryOfOrder handles POST /api/v1/drivers/deliver/{orderId}.
// The body is optional.
func (s *Server) CompleteDeliveryOfOrder(c echo.Context, orderId servers.OrderId) error {
	var details servers.CompleteDeliveryOfOrderJSONRequestBody
	if err := c.Bind(&details); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	return s.deliver(c, orderId, details)
}

func (s *Server) deliver(c echo.Context, rawOrderID openapi_types.UUID, details servers.DeliveryDetails) error {
	orderID, err := uuidOf("orderId", rawOrderID)
	if err != nil {
		return s.fail(c, err)
	}
	principal, _ := PrincipalFrom(c)

	cmd, err := commands.NewCompleteDeliveryCommand(principal.UserID, orderID,
		deref(details.DeliveryNote), deref(details.DeliveryPhoto))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, orderID, principal)
}

// GetDriverOrders handles GET /api/v1/drivers/my/orders[?status=].
func (s *Server) GetDriverOrders(c echo.Context, params servers.GetDriverOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(c, err)
		}
		status = &parsed
	}
	principal, _ := PrincipalFrom(c)

	query, err := queries.NewGetDriverOrdersQuery(principal.UserID, status)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.GetDriverOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GetDriverEarnings handles GET /api/v1/drivers/my/earnings.
func (s *Server) GetDriverEarnings(c echo.Context) error {
	principal, _ := PrincipalFrom(c)
	query, err := queries.NewGetDriverEarningsQuery(principal.UserID)
	if err != nil {
		return s.fail(c, err)
	}
	summary, err := s.handlers.GetDriverEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
