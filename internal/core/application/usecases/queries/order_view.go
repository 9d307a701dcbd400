// Package queries contains the read side of the dispatch core. Handlers run
// plain SQL against the store and return read models shaped for the API, so
// they never load aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order together with the names of its
// restaurant and driver.
type OrderView struct {
	ID                    kernel.UUID     `json:"id"`
	OrderNumber           string          `json:"orderNumber"`
	Status                string          `json:"status"`
	Items                 []OrderItemView `json:"items"`
	Total                 kernel.Money    `json:"total"`
	DeliveryFee           *kernel.Money   `json:"deliveryFee,omitempty"`
	Restaurant            *RestaurantRef  `json:"restaurant,omitempty"`
	UserID                *kernel.UUID    `json:"userId,omitempty"`
	GuestInfo             *GuestInfoView  `json:"guestInfo,omitempty"`
	DeliveryAddress       AddressView     `json:"deliveryAddress"`
	Notes                 string          `json:"notes,omitempty"`
	Driver                *DriverRef      `json:"driver,omitempty"`
	Steps                 []OrderStepView `json:"steps"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime,omitempty"`
	RejectionReason       string          `json:"rejectionReason,omitempty"`
	DeliveredAt           *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
	parties               orderParties
}

type OrderItemView struct {
	FoodItemID string       `json:"foodItemId"`
	Name       string       `json:"name"`
	Price      kernel.Money `json:"price"`
	Quantity   int          `json:"quantity"`
}

type RestaurantRef struct {
	ID   kernel.UUID `json:"id"`
	Name string      `json:"name"`
}

type DriverRef struct {
	ID   kernel.UUID `json:"id"`
	Name string      `json:"name"`
}

type GuestInfoView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type CoordinatesView struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type AddressView struct {
	Street      string           `json:"street"`
	City        string           `json:"city"`
	Coordinates *CoordinatesView `json:"coordinates,omitempty"`
}

type OrderStepView struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// orderParties are the users allowed to see an order besides admins.
type orderParties struct {
	customer        *kernel.UUID
	restaurantOwner *kernel.UUID
	driverUser      *kernel.UUID
}

// visibleTo reports whether p takes part in the order or is an admin.
func (v OrderView) visibleTo(p kernel.Principal) bool {
	if p.IsAdmin() {
		return true
	}
	for _, party := range []*kernel.UUID{v.parties.customer, v.parties.restaurantOwner, v.parties.driverUser} {
		if party != nil && party.IsEqual(p.UserID) {
			return true
		}
	}
	return false
}

const orderViewSelect = `
	SELECT
		o.id,
		o.order_number,
		o.status,
		o.items,
		o.total,
		o.delivery_fee,
		o.restaurant_id,
		r.name,
		r.owner_id,
		o.user_id,
		o.guest_info,
		o.delivery_address,
		o.notes,
		o.driver_id,
		d.name,
		d.user_id,
		o.steps,
		o.estimated_delivery_time,
		o.rejection_reason,
		o.delivered_at,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN restaurants r ON r.id = o.restaurant_id
	LEFT JOIN drivers d ON d.id = o.driver_id
`

type itemRecord struct {
	FoodItemID string          `json:"foodItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// scanOrderViews reads every row produced by a query built on
// orderViewSelect.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			id, restaurantID, ownerID, userID, driverID, driverUserID uuid.NullUUID
			itemsJSON, guestJSON, addressJSON, stepsJSON              []byte
			total                                                     decimal.Decimal
			fee                                                       decimal.NullDecimal
			restaurantName, driverName                                sql.NullString
			view                                                      OrderView
		)

		err := rows.Scan(
			&id,
			&view.OrderNumber,
			&view.Status,
			&itemsJSON,
			&total,
			&fee,
			&restaurantID,
			&restaurantName,
			&ownerID,
			&userID,
			&guestJSON,
			&addressJSON,
			&view.Notes,
			&driverID,
			&driverName,
			&driverUserID,
			&stepsJSON,
			&view.EstimatedDeliveryTime,
			&view.RejectionReason,
			&view.DeliveredAt,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id.UUID[:]); err != nil {
			return nil, err
		}
		if view.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		if fee.Valid {
			m, feeErr := kernel.NewMoney(fee.Decimal)
			if feeErr != nil {
				return nil, feeErr
			}
			view.DeliveryFee = &m
		}
		if view.Items, err = decodeItems(itemsJSON); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(addressJSON, &view.DeliveryAddress); err != nil {
			return nil, err
		}
		if len(guestJSON) > 0 {
			view.GuestInfo = &GuestInfoView{}
			if err = json.Unmarshal(guestJSON, view.GuestInfo); err != nil {
				return nil, err
			}
		}
		view.Steps = make([]OrderStepView, 0)
		if err = json.Unmarshal(stepsJSON, &view.Steps); err != nil {
			return nil, err
		}

		if restaurantID.Valid {
			rid, ridErr := kernel.UUIDFromBytes(restaurantID.UUID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			// A restaurant that is not mirrored locally still shows its id.
			view.Restaurant = &RestaurantRef{ID: rid, Name: restaurantName.String}
		}
		if driverID.Valid {
			did, didErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if didErr != nil {
				return nil, didErr
			}
			view.Driver = &DriverRef{ID: did, Name: driverName.String}
		}
		if view.UserID, err = optionalUUID(userID); err != nil {
			return nil, err
		}
		view.parties.customer = view.UserID
		if view.parties.restaurantOwner, err = optionalUUID(ownerID); err != nil {
			return nil, err
		}
		if view.parties.driverUser, err = optionalUUID(driverUserID); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func decodeItems(raw []byte) ([]OrderItemView, error) {
	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	items := make([]OrderItemView, 0, len(records))
	for _, r := range records {
		price, err := kernel.NewMoney(r.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, OrderItemView{FoodItemID: r.FoodItemID, Name: r.Name, Price: price, Quantity: r.Quantity})
	}
	return items, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent reference
	}
	u, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &u, nil
}
