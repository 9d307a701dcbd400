package queries

import (
	"context"
	"database/sql"

	"orderdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves all drivers sorted by name.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			is_available,
			current_latitude,
			current_longitude,
			last_location_update,
			total_earnings,
			total_deliveries
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d             GetAllDriversQueryResponse
			id, userID    uuid.UUID
			latitude, lon sql.NullFloat64
			earnings      decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&userID,
			&d.Name,
			&d.IsAvailable,
			&latitude,
			&lon,
			&d.LastLocationUpdate,
			&earnings,
			&d.TotalDeliveries,
		)
		if err != nil {
			return nil, err
		}

		if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if d.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if latitude.Valid && lon.Valid {
			location, locErr := kernel.NewLocation(latitude.Float64, lon.Float64)
			if locErr != nil {
				return nil, locErr
			}
			d.Location = &CoordinatesView{Latitude: location.Latitude(), Longitude: location.Longitude()}
		}
		if d.TotalEarnings, err = kernel.NewMoney(earnings); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
