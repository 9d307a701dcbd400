package orderrepo

import (
	"context"
	"errors"
	"time"

	"orderdispatch/internal/adapters/out/postgres/pgerr"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

const numberConstraint = "orders_order_number_key"

// GormOrderRepository implements ports.OrderRepository using GORM. Every
// write is guarded by the version column.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a newly placed order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, numberConstraint) {
			return order.ErrOrderNumberTaken
		}
		return err
	}

	return nil
}

// Update writes the whole row if the stored version still matches.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.save(ctx, aggregate, "was changed concurrently",
		r.db.WithContext(ctx).Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()))
}

// Claim is Update restricted to rows that are still ready and unassigned.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) error {
	return r.save(ctx, aggregate, "already assigned",
		r.db.WithContext(ctx).Where(
			"id = ? AND version = ? AND status = ? AND driver_id IS NULL",
			aggregate.ID().Bytes(), aggregate.Version(), order.Ready.String(),
		))
}

func (r *GormOrderRepository) save(ctx context.Context, aggregate *order.Order, conflict string, scope *gorm.DB) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := scope.Model(&OrderDTO{}).Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if err := r.ensureExists(ctx, aggregate.ID()); err != nil {
			return err
		}
		return errs.NewConflictErrorWithCause("order", conflict,
			errs.NewVersionIsInvalidError("order", aggregate.Version()))
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *GormOrderRepository) ensureExists(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllReadyUnclaimedSince retrieves ready orders without a driver that
// have not changed since cutoff.
func (r *GormOrderRepository) GetAllReadyUnclaimedSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND driver_id IS NULL AND updated_at < ?", order.Ready.String(), cutoff).
		Order("updated_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
