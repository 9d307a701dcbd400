package queries

import (
	"context"

	"orderdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler returns an order to its customer, the owner of its
// restaurant, its driver or an admin. Anyone else gets a ForbiddenError.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderViewSelect+`WHERE o.id = ?`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if !views[0].visibleTo(query.Principal()) {
		return OrderView{}, errs.NewForbiddenError("view order", "")
	}
	return views[0], nil
}
