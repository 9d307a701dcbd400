package http

import (
	"net/http"
	"strings"

	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/generated/servers"
	"orderdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PlaceOrder handles POST /api/v1/orders. Signed in customers order for
// themselves; anonymous requests must carry guest details.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req servers.PlaceOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	params, err := placeOrderParams(req, optionalPrincipal(c))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewPlaceOrderCommand(params)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.PlacedOrder{
		Id:          result.OrderID.Bytes(),
		OrderNumber: result.OrderNumber,
		Status:      servers.OrderStatus(result.Status.String()),
		Total:       result.Total,
	})
}

func placeOrderParams(r servers.NewOrder, principal *kernel.Principal) (commands.PlaceOrderParams, error) {
	restaurantID, err := uuidOf("restaurantId", r.RestaurantId)
	if err != nil {
		return commands.PlaceOrderParams{}, err
	}

	items := make([]order.Item, 0, len(r.Items))
	for _, raw := range r.Items {
		foodItemID, idErr := uuidOf("foodItemId", raw.FoodItemId)
		if idErr != nil {
			return commands.PlaceOrderParams{}, idErr
		}
		item, itemErr := order.NewItem(foodItemID, raw.Name, raw.Price, raw.Quantity)
		if itemErr != nil {
			return commands.PlaceOrderParams{}, itemErr
		}
		items = append(items, item)
	}

	var coordinates *kernel.Location
	if c := r.DeliveryAddress.Coordinates; c != nil {
		loc, locErr := kernel.NewLocation(c.Lat, c.Lng)
		if locErr != nil {
			return commands.PlaceOrderParams{}, locErr
		}
		coordinates = &loc
	}
	address, err := order.NewDeliveryAddress(r.DeliveryAddress.Street, r.DeliveryAddress.City, coordinates)
	if err != nil {
		return commands.PlaceOrderParams{}, err
	}

	var guest *order.GuestInfo
	if principal == nil && r.GuestInfo != nil {
		g, guestErr := order.NewGuestInfo(r.GuestInfo.Name, r.GuestInfo.Email, deref(r.GuestInfo.Phone))
		if guestErr != nil {
			return commands.PlaceOrderParams{}, guestErr
		}
		guest = &g
	}

	return commands.PlaceOrderParams{
		OrderID:         kernel.NewUUID(),
		Principal:       principal,
		RestaurantID:    restaurantID,
		Items:           items,
		DeliveryAddress: address,
		Guest:           guest,
		DeliveryFee:     r.DeliveryFee,
		Notes:           strings.TrimSpace(deref(r.Notes)),
	}, nil
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context, id servers.Id) error {
	orderID, err := uuidOf("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	principal, _ := PrincipalFrom(c)
	return s.respondWithOrder(c, orderID, principal)
}

// TrackOrder handles GET /api/v1/orders/track/{orderNumber}.
func (s *Server) TrackOrder(c echo.Context, orderNumber string) error {
	query, err := queries.NewTrackOrderQuery(orderNumber, optionalPrincipal(c))
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, id servers.Id) error {
	orderID, err := uuidOf("id", id)
	if err != nil {
		return s.fail(c, err)
	}
	var req servers.ChangeOrderStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	target, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return s.fail(c, err)
	}
	principal, _ := PrincipalFrom(c)

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, principal, req.EstimatedTime, deref(req.RejectionReason))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, orderID, principal)
}

// respondWithOrder writes the committed state of an order, read through the
// same access rules as GET /api/v1/orders/{id}.
func (s *Server) respondWithOrder(c echo.Context, orderID kernel.UUID, principal kernel.Principal) error {
	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// uuidOf converts an identifier bound by the generated router.
func uuidOf(field string, id openapi_types.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return converted, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
