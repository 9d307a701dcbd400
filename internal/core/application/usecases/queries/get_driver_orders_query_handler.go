package queries

import (
	"context"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

func (h GetDriverOrdersQueryHandler) Handle(ctx context.Context, query GetDriverOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	driverID, _, err := lookupDriver(ctx, h.db, query.DriverUserID())
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if status := query.Status(); status != nil {
		tx = tx.Raw(orderViewSelect+`
			WHERE o.driver_id = ? AND o.status = ?
			ORDER BY o.created_at DESC
		`, driverID, status.String())
	} else {
		tx = tx.Raw(orderViewSelect+`
			WHERE o.driver_id = ?
			ORDER BY o.created_at DESC
		`, driverID)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}

// lookupDriver resolves the driver profile of a user to its id and delivery
// count.
func lookupDriver(ctx context.Context, db *gorm.DB, userID kernel.UUID) (uuid.UUID, int, error) {
	var row struct {
		ID              uuid.UUID
		TotalDeliveries int
	}
	result := db.WithContext(ctx).
		Raw(`SELECT id, total_deliveries FROM drivers WHERE user_id = ?`, userID.Bytes()).
		Scan(&row)
	if result.Error != nil {
		return uuid.Nil, 0, result.Error
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, 0, errs.NewObjectNotFoundError("driver profile", userID.String())
	}
	return row.ID, row.TotalDeliveries, nil
}
