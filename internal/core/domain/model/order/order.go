package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

const (
	msgPlaced         = "Order has been placed successfully"
	msgAcceptedBy     = "Order accepted by %s. Preparing your food..."
	msgPreparing      = "Your food is being prepared"
	msgReady          = "Your order is ready for pickup"
	msgPickedUp       = "Driver %s is on the way to pick up your order"
	msgOutForDelivery = "Your order is out for delivery"
	msgDelivered      = "Order delivered successfully"

	// DefaultRejectionReason is stored when the restaurant rejects without a reason.
	DefaultRejectionReason = "Order was rejected by the restaurant"
	defaultCancelMessage   = "Order was cancelled"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned for an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrCustomerIsRequired is returned when neither a user nor guest details are given.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("userId or guestInfo")
	// ErrAlreadyAssigned is returned to every claimant but the first.
	ErrAlreadyAssigned = errs.NewConflictError("order", "already assigned")
	// ErrAlreadyDelivered is returned for a second delivery of the same order.
	ErrAlreadyDelivered = errs.NewConflictError("order", "already delivered")
	// ErrOrderNumberTaken is returned by the store when a generated number collides.
	ErrOrderNumberTaken = errs.NewConflictError("orderNumber", "is already taken")
)

// NewOrderNumber returns a human readable order number of the form
// ORD-YYYYMMDD-NNNN. Numbers are not guaranteed unique; the store enforces
// uniqueness and placement retries on collision.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", now.UTC().Format("20060102"), rand.IntN(10000)) //nolint:gosec // not security sensitive
}

// PlaceParams holds everything a customer supplies when placing an order.
type PlaceParams struct {
	ID              kernel.UUID
	Number          string
	RestaurantID    *kernel.UUID
	CustomerID      *kernel.UUID
	Guest           *GuestInfo
	Items           []Item
	DeliveryAddress DeliveryAddress
	DeliveryFee     *kernel.Money
	Notes           string
}

// TransitionDetails carries the optional inputs of a status change.
type TransitionDetails struct {
	// RestaurantName is used in the accepted step message.
	RestaurantName string
	// EstimatedMinutes sets the estimated delivery time on accept.
	EstimatedMinutes *int
	// Reason is stored as the rejection reason, or used as the cancel message.
	Reason string
}

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - status only moves along the edges of the state machine
//   - driverID is set at most once, when the order is claimed in ready
//   - steps are append-only
//   - exactly one of customerID and guest is set
//   - version grows by one on every persisted change
type Order struct {
	id                    kernel.UUID
	number                string
	status                Status
	items                 []Item
	total                 kernel.Money
	deliveryFee           *kernel.Money
	restaurantID          *kernel.UUID
	customerID            *kernel.UUID
	guest                 *GuestInfo
	deliveryAddress       DeliveryAddress
	notes                 string
	driverID              *kernel.UUID
	steps                 []Step
	estimatedDeliveryTime *time.Time
	rejectionReason       string
	deliveredAt           *time.Time
	deliveryNote          string
	deliveryPhoto         string
	version               int64
	createdAt             time.Time
	updatedAt             time.Time
	guard                 guard.ConstructorGuard
}

// NewOrder places a new order. The total is the item subtotal plus the
// delivery fee, the status is placed and the first step is recorded.
func NewOrder(params PlaceParams, now time.Time) (*Order, error) {
	o := &Order{
		status: Placed,
		notes:  params.Notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setNumber(params.Number),
		o.setItems(params.Items),
		o.setCustomer(params.CustomerID, params.Guest),
		o.setRestaurant(params.RestaurantID),
		o.setDeliveryAddress(params.DeliveryAddress),
	); err != nil {
		return nil, err
	}

	o.deliveryFee = params.DeliveryFee
	o.total = o.Subtotal()
	if o.deliveryFee != nil {
		o.total = o.total.Add(*o.deliveryFee)
	}

	now = now.UTC()
	o.createdAt = now
	o.updatedAt = now
	o.appendStep(Placed, now, msgPlaced)

	return o, nil
}

// Snapshot is the persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID                    kernel.UUID
	Number                string
	Status                Status
	Items                 []Item
	Total                 kernel.Money
	DeliveryFee           *kernel.Money
	RestaurantID          *kernel.UUID
	CustomerID            *kernel.UUID
	Guest                 *GuestInfo
	DeliveryAddress       DeliveryAddress
	Notes                 string
	DriverID              *kernel.UUID
	Steps                 []Step
	EstimatedDeliveryTime *time.Time
	RejectionReason       string
	DeliveredAt           *time.Time
	DeliveryNote          string
	DeliveryPhoto         string
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestoreOrder rebuilds an order loaded from storage. Only identity and
// status are validated; the rest is trusted as written by this package.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.ID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                    s.ID,
		number:                s.Number,
		status:                s.Status,
		items:                 append([]Item(nil), s.Items...),
		total:                 s.Total,
		deliveryFee:           s.DeliveryFee,
		restaurantID:          s.RestaurantID,
		customerID:            s.CustomerID,
		guest:                 s.Guest,
		deliveryAddress:       s.DeliveryAddress,
		notes:                 s.Notes,
		driverID:              s.DriverID,
		steps:                 append([]Step(nil), s.Steps...),
		estimatedDeliveryTime: s.EstimatedDeliveryTime,
		rejectionReason:       s.RejectionReason,
		deliveredAt:           s.DeliveredAt,
		deliveryNote:          s.DeliveryNote,
		deliveryPhoto:         s.DeliveryPhoto,
		version:               s.Version,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Number() string { return o.number }
func (o *Order) Status() Status { return o.status }
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) DeliveryFee() *kernel.Money { return o.deliveryFee }
func (o *Order) RestaurantID() *kernel.UUID { return o.restaurantID }
func (o *Order) CustomerID() *kernel.UUID { return o.customerID }
func (o *Order) Guest() *GuestInfo { return o.guest }
func (o *Order) DeliveryAddress() DeliveryAddress { return o.deliveryAddress }
func (o *Order) Notes() string { return o.notes }
func (o *Order) DriverID() *kernel.UUID { return o.driverID }
func (o *Order) Steps() []Step { return append([]Step(nil), o.steps...) }
func (o *Order) EstimatedDeliveryTime() *time.Time { return o.estimatedDeliveryTime }
func (o *Order) RejectionReason() string { return o.rejectionReason }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
func (o *Order) DeliveryNote() string { return o.deliveryNote }
func (o *Order) DeliveryPhoto() string { return o.deliveryPhoto }
func (o *Order) Version() int64 { return o.version }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Subtotal is the sum of item prices times quantities, without the fee.
func (o *Order) Subtotal() kernel.Money {
	sum := kernel.ZeroMoney
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// LastStep returns the most recent audit entry.
func (o *Order) LastStep() Step {
	return o.steps[len(o.steps)-1]
}

// IsAssignedTo reports whether driverID is the order's driver.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// IsPlacedBy reports whether userID is the authenticated customer of the order.
func (o *Order) IsPlacedBy(userID kernel.UUID) bool {
	return o.customerID != nil && o.customerID.IsEqual(userID)
}

// IncrementVersion is called by the store after a successful conditional write.
func (o *Order) IncrementVersion() {
	o.version++
}

// Transition moves the order to target along a state machine edge and
// appends the matching step. picked_up and delivered are rejected here:
// use AssignDriver and Deliver.
func (o *Order) Transition(target Status, details TransitionDetails, now time.Time) error {
	if target == PickedUp || target == Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is set by the driver dispatch operations", target))
	}
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	now = now.UTC()
	var message string

	//nolint:exhaustive // picked_up and delivered are rejected above
	switch target {
	case Accepted:
		name := details.RestaurantName
		if name == "" {
			name = "the restaurant"
		}
		if details.EstimatedMinutes != nil {
			minutes := *details.EstimatedMinutes
			if minutes <= 0 {
				return errs.NewValueIsInvalidErrorWithCause("estimatedTime",
					fmt.Errorf("%d is not greater than 0", minutes))
			}
			eta := now.Add(time.Duration(minutes) * time.Minute)
			o.estimatedDeliveryTime = &eta
		}
		message = fmt.Sprintf(msgAcceptedBy, name)
	case Preparing:
		message = msgPreparing
	case Ready:
		message = msgReady
	case OutForDelivery:
		message = msgOutForDelivery
	case Rejected:
		o.rejectionReason = details.Reason
		if o.rejectionReason == "" {
			o.rejectionReason = DefaultRejectionReason
		}
		message = o.rejectionReason
	case Cancelled:
		message = details.Reason
		if message == "" {
			message = defaultCancelMessage
		}
	}

	o.status = target
	o.updatedAt = now
	o.appendStep(target, now, message)
	return nil
}

// AssignDriver claims a ready, unassigned order for driverID and moves it to
// picked_up.
func (o *Order) AssignDriver(driverID kernel.UUID, driverName string, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrAlreadyAssigned
	}
	if err := o.status.CanTransitionTo(PickedUp); err != nil {
		return errs.NewConflictErrorWithCause("order", "is not ready for pickup", err)
	}

	now = now.UTC()
	o.driverID = &driverID
	o.status = PickedUp
	o.updatedAt = now
	o.appendStep(PickedUp, now, fmt.Sprintf(msgPickedUp, driverName))
	return nil
}

// Deliver completes the order on behalf of its assigned driver.
func (o *Order) Deliver(driverID kernel.UUID, note, photo string, now time.Time) error {
	if !o.IsAssignedTo(driverID) {
		return errs.NewForbiddenError("deliver order", "order is not assigned to this driver")
	}
	if o.status == Delivered {
		return ErrAlreadyDelivered
	}
	if err := o.status.CanTransitionTo(Delivered); err != nil {
		return err
	}

	now = now.UTC()
	o.status = Delivered
	o.deliveredAt = &now
	o.deliveryNote = note
	o.deliveryPhoto = photo
	o.updatedAt = now
	o.appendStep(Delivered, now, msgDelivered)
	return nil
}

func (o *Order) appendStep(kind Status, now time.Time, message string) {
	o.steps = append(o.steps, NewStep(kind, now, message))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setCustomer(customerID *kernel.UUID, guest *GuestInfo) error {
	switch {
	case customerID != nil && guest != nil:
		return errs.NewValueIsInvalidErrorWithCause("customer",
			errors.New("either an authenticated user or guest info, not both"))
	case customerID != nil:
		if err := customerID.Validate(); err != nil {
			return err
		}
		o.customerID = customerID
	case guest != nil:
		if guest.Name == "" || guest.Email == "" {
			return errs.NewValueIsRequiredError("guest name and email")
		}
		o.guest = guest
	default:
		return ErrCustomerIsRequired
	}
	return nil
}

func (o *Order) setRestaurant(restaurantID *kernel.UUID) error {
	if restaurantID == nil {
		return nil
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(address DeliveryAddress) error {
	if address.Street == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
