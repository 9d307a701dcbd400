// Package orderrepo persists order aggregates in the orders table. Items,
// steps, the delivery address and guest details are stored as JSONB.
package orderrepo

import (
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderNumber           string           `gorm:"uniqueIndex:orders_order_number_key"`
	Status                string           `gorm:"index:idx_orders_status_driver,priority:1"`
	Items                 []ItemDTO        `gorm:"type:jsonb;serializer:json"`
	Total                 decimal.Decimal  `gorm:"type:numeric(10,2)"`
	DeliveryFee           *decimal.Decimal `gorm:"type:numeric(10,2)"`
	RestaurantID          *uuid.UUID       `gorm:"type:uuid;index"`
	UserID                *uuid.UUID       `gorm:"type:uuid"`
	GuestInfo             *GuestInfoDTO    `gorm:"type:jsonb;serializer:json"`
	DeliveryAddress       AddressDTO       `gorm:"type:jsonb;serializer:json"`
	Notes                 string
	DriverID              *uuid.UUID `gorm:"type:uuid;index:idx_orders_status_driver,priority:2"`
	Steps                 []StepDTO  `gorm:"type:jsonb;serializer:json"`
	EstimatedDeliveryTime *time.Time
	RejectionReason       string
	DeliveredAt           *time.Time
	DeliveryNote          string
	DeliveryPhoto         string
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	FoodItemID uuid.UUID       `json:"foodItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

type GuestInfoDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type AddressDTO struct {
	Street      string          `json:"street"`
	City        string          `json:"city"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type StepDTO struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			FoodItemID: item.FoodItemID.Bytes(),
			Name:       item.Name,
			Price:      item.Price.Decimal(),
			Quantity:   item.Quantity,
		})
	}

	steps := make([]StepDTO, 0, len(o.Steps()))
	for _, step := range o.Steps() {
		steps = append(steps, StepDTO{
			Step:      step.Kind().String(),
			Timestamp: step.Timestamp(),
			Message:   step.Message(),
		})
	}

	address := AddressDTO{
		Street: o.DeliveryAddress().Street,
		City:   o.DeliveryAddress().City,
	}
	if c := o.DeliveryAddress().Coordinates; c != nil {
		address.Coordinates = &CoordinatesDTO{Latitude: c.Latitude(), Longitude: c.Longitude()}
	}

	var guest *GuestInfoDTO
	if g := o.Guest(); g != nil {
		guest = &GuestInfoDTO{Name: g.Name, Email: g.Email, Phone: g.Phone}
	}

	var fee *decimal.Decimal
	if f := o.DeliveryFee(); f != nil {
		d := f.Decimal()
		fee = &d
	}

	return OrderDTO{
		ID:                    o.ID().Bytes(),
		OrderNumber:           o.Number(),
		Status:                o.Status().String(),
		Items:                 items,
		Total:                 o.Total().Decimal(),
		DeliveryFee:           fee,
		RestaurantID:          optionalID(o.RestaurantID()),
		UserID:                optionalID(o.CustomerID()),
		GuestInfo:             guest,
		DeliveryAddress:       address,
		Notes:                 o.Notes(),
		DriverID:              optionalID(o.DriverID()),
		Steps:                 steps,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		RejectionReason:       o.RejectionReason(),
		DeliveredAt:           o.DeliveredAt(),
		DeliveryNote:          o.DeliveryNote(),
		DeliveryPhoto:         o.DeliveryPhoto(),
		Version:               o.Version(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		foodItemID, idErr := kernel.UUIDFromBytes(item.FoodItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(item.Price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		items = append(items, order.Item{FoodItemID: foodItemID, Name: item.Name, Price: price, Quantity: item.Quantity})
	}

	steps := make([]order.Step, 0, len(dto.Steps))
	for _, step := range dto.Steps {
		kind, kindErr := order.ParseStatus(step.Step)
		if kindErr != nil {
			return nil, kindErr
		}
		steps = append(steps, order.NewStep(kind, step.Timestamp, step.Message))
	}

	address := order.DeliveryAddress{Street: dto.DeliveryAddress.Street, City: dto.DeliveryAddress.City}
	if c := dto.DeliveryAddress.Coordinates; c != nil {
		loc, locErr := kernel.NewLocation(c.Latitude, c.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		address.Coordinates = &loc
	}

	var guest *order.GuestInfo
	if dto.GuestInfo != nil {
		guest = &order.GuestInfo{Name: dto.GuestInfo.Name, Email: dto.GuestInfo.Email, Phone: dto.GuestInfo.Phone}
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	var fee *kernel.Money
	if dto.DeliveryFee != nil {
		m, feeErr := kernel.NewMoney(*dto.DeliveryFee)
		if feeErr != nil {
			return nil, feeErr
		}
		fee = &m
	}

	restaurantID, err := restoreID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	customerID, err := restoreID(dto.UserID)
	if err != nil {
		return nil, err
	}
	driverID, err := restoreID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                    id,
		Number:                dto.OrderNumber,
		Status:                status,
		Items:                 items,
		Total:                 total,
		DeliveryFee:           fee,
		RestaurantID:          restaurantID,
		CustomerID:            customerID,
		Guest:                 guest,
		DeliveryAddress:       address,
		Notes:                 dto.Notes,
		DriverID:              driverID,
		Steps:                 steps,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		RejectionReason:       dto.RejectionReason,
		DeliveredAt:           dto.DeliveredAt,
		DeliveryNote:          dto.DeliveryNote,
		DeliveryPhoto:         dto.DeliveryPhoto,
		Version:               dto.Version,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
	})
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
