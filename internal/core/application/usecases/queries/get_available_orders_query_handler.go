package queries

import (
	"context"

	"orderdispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderViewSelect+`
		WHERE o.status = ? AND o.driver_id IS NULL
		ORDER BY o.created_at ASC
	`, order.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
