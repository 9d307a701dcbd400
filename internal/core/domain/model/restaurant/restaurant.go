// Package restaurant holds the Restaurant aggregate as seen by ordering:
// ownership, open/active flags, the minimum order amount and the running
// order count.
package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

var (
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	ErrNameIsRequired             = errs.NewValueIsRequiredError("name")
	// ErrNotAcceptingOrders is returned when placing an order at an inactive or closed restaurant.
	ErrNotAcceptingOrders = errs.NewValueIsInvalidErrorWithCause("restaurant",
		errors.New("restaurant is not accepting orders"))
)

type Restaurant struct {
	id             kernel.UUID
	ownerID        kernel.UUID
	name           string
	isActive       bool
	isOpen         bool
	minOrderAmount kernel.Money
	totalOrders    int
	guard          guard.ConstructorGuard
}

// NewRestaurant registers an active, open restaurant.
func NewRestaurant(id, ownerID kernel.UUID, name string, minOrderAmount kernel.Money) (*Restaurant, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), ownerID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:             id,
		ownerID:        ownerID,
		name:           name,
		isActive:       true,
		isOpen:         true,
		minOrderAmount: minOrderAmount,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the persisted state of a restaurant.
type Snapshot struct {
	ID             kernel.UUID
	OwnerID        kernel.UUID
	Name           string
	IsActive       bool
	IsOpen         bool
	MinOrderAmount kernel.Money
	TotalOrders    int
}

func RestoreRestaurant(s Snapshot) (*Restaurant, error) {
	if err := errors.Join(s.ID.Validate(), s.OwnerID.Validate()); err != nil {
		return nil, err
	}
	return &Restaurant{
		id:             s.ID,
		ownerID:        s.OwnerID,
		name:           s.Name,
		isActive:       s.IsActive,
		isOpen:         s.IsOpen,
		minOrderAmount: s.MinOrderAmount,
		totalOrders:    s.TotalOrders,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) IsActive() bool {
	return r.isActive
}

func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

func (r *Restaurant) MinOrderAmount() kernel.Money {
	return r.minOrderAmount
}

func (r *Restaurant) TotalOrders() int {
	return r.totalOrders
}

func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// Close and Open toggle whether new orders are taken.
func (r *Restaurant) Close() {
	r.isOpen = false
}

func (r *Restaurant) Open() {
	r.isOpen = true
}

func (r *Restaurant) Deactivate() {
	r.isActive = false
}

// CheckNewOrder reports whether an order with the given item subtotal can be
// placed here. The order count is incremented by the store in the same
// transaction as the order insert.
func (r *Restaurant) CheckNewOrder(subtotal kernel.Money) error {
	if !r.isActive || !r.isOpen {
		return ErrNotAcceptingOrders
	}
	if subtotal.LessThan(r.minOrderAmount) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("minimum order amount is %s", r.minOrderAmount))
	}
	return nil
}
