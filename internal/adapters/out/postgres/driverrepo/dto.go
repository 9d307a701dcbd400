// Package driverrepo persists driver aggregates in the drivers table.
package driverrepo

import (
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverDTO is the row layout of the drivers table.
type DriverDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID   `gorm:"type:uuid;uniqueIndex:drivers_user_id_key"`
	Name               string      `gorm:"not null"`
	IsAvailable        bool        `gorm:"not null"`
	Location           LocationDTO `gorm:"embedded;embeddedPrefix:current_"`
	LastLocationUpdate *time.Time
	TotalEarnings      decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalDeliveries    int
	Version            int64
}

func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO is the driver's last reported position. Both columns are
// NULL until the first report.
type LocationDTO struct {
	Latitude  *float64
	Longitude *float64
}

func fromDomain(d *driver.Driver) DriverDTO {
	var location LocationDTO
	if loc := d.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		location = LocationDTO{Latitude: &lat, Longitude: &lon}
	}

	return DriverDTO{
		ID:                 d.ID().Bytes(),
		UserID:             d.UserID().Bytes(),
		Name:               d.Name(),
		IsAvailable:        d.IsAvailable(),
		Location:           location,
		LastLocationUpdate: d.LastLocationUpdate(),
		TotalEarnings:      d.TotalEarnings().Decimal(),
		TotalDeliveries:    d.TotalDeliveries(),
		Version:            d.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Location.Latitude, *dto.Location.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	earnings, err := kernel.NewMoney(dto.TotalEarnings)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID:                 id,
		UserID:             userID,
		Name:               dto.Name,
		IsAvailable:        dto.IsAvailable,
		Location:           location,
		LastLocationUpdate: dto.LastLocationUpdate,
		TotalEarnings:      earnings,
		TotalDeliveries:    dto.TotalDeliveries,
		Version:            dto.Version,
	})
}
