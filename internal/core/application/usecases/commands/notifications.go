package commands

import (
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
)

// Notification payloads. They are serialized to JSON by the bus. Order
// events carry the whole order so subscribers never need to re-fetch it.

type StepPayload struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type ItemPayload struct {
	FoodItemID string       `json:"foodItemId"`
	Name       string       `json:"name"`
	Price      kernel.Money `json:"price"`
	Quantity   int          `json:"quantity"`
}

type GuestInfoPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type CoordinatesPayload struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type AddressPayload struct {
	Street      string              `json:"street"`
	City        string              `json:"city"`
	Coordinates *CoordinatesPayload `json:"coordinates,omitempty"`
}

// OrderPayload mirrors the order read model.
type OrderPayload struct {
	ID                    string            `json:"id"`
	OrderNumber           string            `json:"orderNumber"`
	Status                string            `json:"status"`
	Items                 []ItemPayload     `json:"items"`
	Total                 kernel.Money      `json:"total"`
	DeliveryFee           *kernel.Money     `json:"deliveryFee,omitempty"`
	RestaurantID          *string           `json:"restaurantId,omitempty"`
	UserID                *string           `json:"userId,omitempty"`
	GuestInfo             *GuestInfoPayload `json:"guestInfo,omitempty"`
	DeliveryAddress       AddressPayload    `json:"deliveryAddress"`
	Notes                 string            `json:"notes,omitempty"`
	DriverID              *string           `json:"driverId,omitempty"`
	Steps                 []StepPayload     `json:"steps"`
	EstimatedDeliveryTime *time.Time        `json:"estimatedDeliveryTime,omitempty"`
	RejectionReason       string            `json:"rejectionReason,omitempty"`
	DeliveredAt           *time.Time        `json:"deliveredAt,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

// NewOrderPayload is sent to the restaurant room when an order is placed.
type NewOrderPayload struct {
	OrderPayload
}

// OrderUpdatedPayload is the updated order plus the step the change added.
type OrderUpdatedPayload struct {
	OrderPayload
	Step StepPayload `json:"step"`
}

// OrderReadyPayload announces a ready order to the driver pool.
type OrderReadyPayload struct {
	OrderPayload
	ReadySince time.Time `json:"readySince"`
}

type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DriverPayload struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Location *LocationPayload `json:"currentLocation,omitempty"`
}

type DriverAssignedPayload struct {
	OrderID string        `json:"orderId"`
	Driver  DriverPayload `json:"driver"`
}

type DriverLocationPayload struct {
	OrderID   string    `json:"orderId"`
	DriverID  string    `json:"driverId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func newStepPayload(s order.Step) StepPayload {
	return StepPayload{Step: s.Kind().String(), Timestamp: s.Timestamp(), Message: s.Message()}
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func newOrderPayload(o *order.Order) OrderPayload {
	items := o.Items()
	steps := o.Steps()
	address := o.DeliveryAddress()

	payload := OrderPayload{
		ID:           o.ID().String(),
		OrderNumber:  o.Number(),
		Status:       o.Status().String(),
		Items:        make([]ItemPayload, 0, len(items)),
		Total:        o.Total(),
		DeliveryFee:  o.DeliveryFee(),
		RestaurantID: optionalID(o.RestaurantID()),
		UserID:       optionalID(o.CustomerID()),
		DeliveryAddress: AddressPayload{
			Street: address.Street,
			City:   address.City,
		},
		Notes:                 o.Notes(),
		DriverID:              optionalID(o.DriverID()),
		Steps:                 make([]StepPayload, 0, len(steps)),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		RejectionReason:       o.RejectionReason(),
		DeliveredAt:           o.DeliveredAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
	if c := address.Coordinates; c != nil {
		payload.DeliveryAddress.Coordinates = &CoordinatesPayload{Latitude: c.Latitude(), Longitude: c.Longitude()}
	}
	if g := o.Guest(); g != nil {
		payload.GuestInfo = &GuestInfoPayload{Name: g.Name, Email: g.Email, Phone: g.Phone}
	}
	for _, item := range items {
		payload.Items = append(payload.Items, ItemPayload{
			FoodItemID: item.FoodItemID.String(),
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	for _, s := range steps {
		payload.Steps = append(payload.Steps, newStepPayload(s))
	}
	return payload
}

func newOrderUpdatedPayload(o *order.Order) OrderUpdatedPayload {
	return OrderUpdatedPayload{OrderPayload: newOrderPayload(o), Step: newStepPayload(o.LastStep())}
}

func newLocationPayload(l *kernel.Location) *LocationPayload {
	if l == nil {
		return nil
	}
	return &LocationPayload{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func newDriverAssignedPayload(o *order.Order, d *driver.Driver) DriverAssignedPayload {
	return DriverAssignedPayload{
		OrderID: o.ID().String(),
		Driver: DriverPayload{
			ID:       d.ID().String(),
			Name:     d.Name(),
			Location: newLocationPayload(d.Location()),
		},
	}
}

func newOrderReadyPayload(o *order.Order) OrderReadyPayload {
	return OrderReadyPayload{OrderPayload: newOrderPayload(o), ReadySince: o.UpdatedAt()}
}

func newNewOrderPayload(o *order.Order) NewOrderPayload {
	return NewOrderPayload{OrderPayload: newOrderPayload(o)}
}
