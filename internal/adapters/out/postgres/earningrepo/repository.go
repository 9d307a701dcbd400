// Package earningrepo is the insert-only driver_earnings ledger.
package earningrepo

import (
	"context"
	"time"

	"orderdispatch/internal/adapters/out/postgres/pgerr"
	"orderdispatch/internal/core/domain/model/earning"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DriverEarningDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID       `gorm:"type:uuid;index"`
	OrderID      uuid.UUID       `gorm:"type:uuid;uniqueIndex:driver_earnings_order_id_key"`
	TotalEarning decimal.Decimal `gorm:"type:numeric(10,2)"`
	PlatformFee  decimal.Decimal `gorm:"type:numeric(10,2)"`
	NetEarning   decimal.Decimal `gorm:"type:numeric(10,2)"`
	Currency     string
	CreatedAt    time.Time
}

func (DriverEarningDTO) TableName() string {
	return "driver_earnings"
}

type GormEarningRepository struct {
	db *gorm.DB
}

func NewGormEarningRepository(db *gorm.DB) *GormEarningRepository {
	return &GormEarningRepository{db: db}
}

// Add inserts a ledger row. The unique order_id turns a second payout for
// the same order into a conflict.
func (r *GormEarningRepository) Add(ctx context.Context, entry *earning.DriverEarning) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := DriverEarningDTO{
		ID:           entry.ID().Bytes(),
		DriverID:     entry.DriverID().Bytes(),
		OrderID:      entry.OrderID().Bytes(),
		TotalEarning: entry.TotalEarning().Decimal(),
		PlatformFee:  entry.PlatformFee().Decimal(),
		NetEarning:   entry.NetEarning().Decimal(),
		Currency:     entry.Currency(),
		CreatedAt:    entry.CreatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "driver_earnings_order_id_key") {
			return errs.NewConflictError("earning", "already recorded for this order")
		}
		return err
	}

	return nil
}

// TotalNet sums the net earnings of a driver. A driver without deliveries
// has a zero total.
func (r *GormEarningRepository) TotalNet(ctx context.Context, driverID kernel.UUID) (kernel.Money, error) {
	if err := driverID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&DriverEarningDTO{}).
		Select("COALESCE(SUM(net_earning), 0)").
		Where("driver_id = ?", driverID.Bytes()).
		Scan(&total).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(total)
}
