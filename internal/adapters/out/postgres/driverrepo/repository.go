package driverrepo

import (
	"context"
	"errors"

	"orderdispatch/internal/adapters/out/postgres/pgerr"
	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver. One profile per user.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "drivers_user_id_key") {
			return errs.NewConflictError("driver", "profile already exists for this user")
		}
		return err
	}

	return nil
}

// Update writes the whole row if the stored version still matches and
// increments the version.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, aggregate.ID()); err != nil {
			return err
		}
		return errs.NewConflictErrorWithCause("driver", "was changed concurrently",
			errs.NewVersionIsInvalidError("driver", aggregate.Version()))
	}

	aggregate.IncrementVersion()
	return nil
}

// UpdateLocation writes the position columns only and leaves the version
// alone.
func (r *GormDriverRepository) UpdateLocation(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"current_latitude":     dto.Location.Latitude,
			"current_longitude":    dto.Location.Longitude,
			"last_location_update": dto.LastLocationUpdate,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "driver", id, "id = ?", id.Bytes())
}

// GetByUserID retrieves the driver profile of a user.
func (r *GormDriverRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "driver profile", userID, "user_id = ?", userID.Bytes())
}

func (r *GormDriverRepository) first(ctx context.Context, param string, id kernel.UUID, query string, args ...any) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
