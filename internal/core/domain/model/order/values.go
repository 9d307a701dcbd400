package order

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"
)

// Item is one line of an order. Name and price are captured at placement so
// later menu edits do not change historical orders.
type Item struct {
	FoodItemID kernel.UUID
	Name       string
	Price      kernel.Money
	Quantity   int
}

func NewItem(foodItemID kernel.UUID, name string, price kernel.Money, quantity int) (Item, error) {
	var nameErr, quantityErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(foodItemID.Validate(), nameErr, quantityErr); err != nil {
		return Item{}, err
	}
	return Item{FoodItemID: foodItemID, Name: name, Price: price, Quantity: quantity}, nil
}

// Subtotal is price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.Price.MulInt(i.Quantity)
}

// GuestInfo identifies a customer who ordered without an account.
type GuestInfo struct {
	Name  string
	Email string
	Phone string
}

func NewGuestInfo(name, email, phone string) (GuestInfo, error) {
	var nameErr, emailErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("guest name")
	}
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("guest email")
	} else if _, err := mail.ParseAddress(email); err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("guest email", err)
	}
	if err := errors.Join(nameErr, emailErr); err != nil {
		return GuestInfo{}, err
	}
	return GuestInfo{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Phone: strings.TrimSpace(phone)}, nil
}

// DeliveryAddress is where the order goes. Coordinates are optional; when
// present they seed the driver's location on claim.
type DeliveryAddress struct {
	Street      string
	City        string
	Coordinates *kernel.Location
}

func NewDeliveryAddress(street, city string, coordinates *kernel.Location) (DeliveryAddress, error) {
	if strings.TrimSpace(street) == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("delivery street")
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return DeliveryAddress{}, err
		}
	}
	return DeliveryAddress{Street: street, City: city, Coordinates: coordinates}, nil
}
