package driver

import (
	"errors"
	"strings"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a driver is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsBusy is returned when an unavailable driver tries to take another order.
	ErrDriverIsBusy = errs.NewConflictError("driver", "is already delivering an order")
)

// Driver is the aggregate root for a delivery driver. It is linked one to one
// with an authenticated user of role driver.
type Driver struct {
	id                 kernel.UUID
	userID             kernel.UUID
	name               string
	isAvailable        bool
	location           *kernel.Location
	lastLocationUpdate *time.Time
	totalEarnings      kernel.Money
	totalDeliveries    int
	version            int64
	guard              guard.ConstructorGuard
}

// NewDriver registers an available driver with no position and zero totals.
func NewDriver(id, userID kernel.UUID, name string) (*Driver, error) {
	d := &Driver{
		isAvailable:   true,
		totalEarnings: kernel.ZeroMoney,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Snapshot is the persisted state of a driver.
type Snapshot struct {
	ID                 kernel.UUID
	UserID             kernel.UUID
	Name               string
	IsAvailable        bool
	Location           *kernel.Location
	LastLocationUpdate *time.Time
	TotalEarnings      kernel.Money
	TotalDeliveries    int
	Version            int64
}

// RestoreDriver rebuilds a driver loaded from storage.
func RestoreDriver(s Snapshot) (*Driver, error) {
	if err := errors.Join(s.ID.Validate(), s.UserID.Validate()); err != nil {
		return nil, err
	}

	return &Driver{
		id:                 s.ID,
		userID:             s.UserID,
		name:               s.Name,
		isAvailable:        s.IsAvailable,
		location:           s.Location,
		lastLocationUpdate: s.LastLocationUpdate,
		totalEarnings:      s.TotalEarnings,
		totalDeliveries:    s.TotalDeliveries,
		version:            s.Version,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// Location returns the last reported position, or nil if none was reported.
func (d *Driver) Location() *kernel.Location {
	return d.location
}

func (d *Driver) LastLocationUpdate() *time.Time {
	return d.lastLocationUpdate
}

func (d *Driver) TotalEarnings() kernel.Money {
	return d.totalEarnings
}

func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

func (d *Driver) Version() int64 {
	return d.version
}

// IncrementVersion is called by the store after a successful conditional write.
func (d *Driver) IncrementVersion() {
	d.version++
}

// TakeOrder marks the driver busy. When the order has delivery coordinates
// they become the driver's position until the first live update.
func (d *Driver) TakeOrder(seed *kernel.Location, now time.Time) error {
	if !d.isAvailable {
		return ErrDriverIsBusy
	}

	d.isAvailable = false
	if seed != nil {
		d.moveTo(*seed, now)
	}
	return nil
}

// CompleteDelivery frees the driver and books the net earning of the delivery.
func (d *Driver) CompleteDelivery(netEarning kernel.Money) {
	d.isAvailable = true
	d.totalDeliveries++
	d.totalEarnings = d.totalEarnings.Add(netEarning)
}

// Release frees the driver without booking a delivery, as when the held
// order is cancelled.
func (d *Driver) Release() {
	d.isAvailable = true
}

// UpdateLocation records the reported position. Reports are not ordered;
// the last one written wins.
func (d *Driver) UpdateLocation(location kernel.Location, now time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.moveTo(location, now)
	return nil
}

func (d *Driver) moveTo(location kernel.Location, now time.Time) {
	now = now.UTC()
	d.location = &location
	d.lastLocationUpdate = &now
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	d.userID = userID
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
