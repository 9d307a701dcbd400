package queries

import (
	"context"

	"orderdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderViewSelect+`WHERE o.order_number = ?`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	if p := query.Principal(); p != nil && !views[0].visibleTo(*p) {
		return OrderView{}, errs.NewForbiddenError("track order", "order belongs to another user")
	}
	return views[0], nil
}
