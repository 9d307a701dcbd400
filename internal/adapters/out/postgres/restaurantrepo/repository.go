// Package restaurantrepo persists restaurants in the restaurants table.
package restaurantrepo

import (
	"context"
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RestaurantDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	IsActive       bool
	IsOpen         bool
	MinOrderAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalOrders    int
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the settings of a restaurant. The order counter is left to
// IncrementTotalOrders.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("owner_id", "name", "is_active", "is_open", "min_order_amount").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID().String())
	}

	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// IncrementTotalOrders adds one to the counter in a single statement, so
// concurrent placements never lose an increment.
func (r *GormRestaurantRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("total_orders", gorm.Expr("total_orders + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}

	return nil
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:             r.ID().Bytes(),
		OwnerID:        r.OwnerID().Bytes(),
		Name:           r.Name(),
		IsActive:       r.IsActive(),
		IsOpen:         r.IsOpen(),
		MinOrderAmount: r.MinOrderAmount().Decimal(),
		TotalOrders:    r.TotalOrders(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	minOrder, err := kernel.NewMoney(dto.MinOrderAmount)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(restaurant.Snapshot{
		ID:             id,
		OwnerID:        ownerID,
		Name:           dto.Name,
		IsActive:       dto.IsActive,
		IsOpen:         dto.IsOpen,
		MinOrderAmount: minOrder,
		TotalOrders:    dto.TotalOrders,
	})
}
