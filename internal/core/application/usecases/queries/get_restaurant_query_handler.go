package queries

import (
	"context"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return RestaurantView{}, err
	}

	var row struct {
		ID             uuid.UUID
		OwnerID        uuid.UUID
		Name           string
		IsActive       bool
		IsOpen         bool
		MinOrderAmount decimal.Decimal
		TotalOrders    int
		CreatedAt      time.Time
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, name, is_active, is_open, min_order_amount, total_orders, created_at
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Scan(&row)
	if result.Error != nil {
		return RestaurantView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return RestaurantView{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID().String())
	}

	view := RestaurantView{
		Name:        row.Name,
		IsActive:    row.IsActive,
		IsOpen:      row.IsOpen,
		TotalOrders: row.TotalOrders,
		CreatedAt:   row.CreatedAt,
	}
	var err error
	if view.ID, err = kernel.UUIDFromBytes(row.ID[:]); err != nil {
		return RestaurantView{}, err
	}
	if view.OwnerID, err = kernel.UUIDFromBytes(row.OwnerID[:]); err != nil {
		return RestaurantView{}, err
	}
	if view.MinOrderAmount, err = kernel.NewMoney(row.MinOrderAmount); err != nil {
		return RestaurantView{}, err
	}
	return view, nil
}
