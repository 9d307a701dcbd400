package queries

import (
	"context"

	"orderdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDriverEarningsQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverEarningsQueryHandler(db *gorm.DB) GetDriverEarningsQueryHandler {
	return GetDriverEarningsQueryHandler{db: db}
}

func (h GetDriverEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverEarningsQuery,
) (GetDriverEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}

	driverID, deliveries, err := lookupDriver(ctx, h.db, query.DriverUserID())
	if err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.total_earning,
			e.platform_fee,
			e.net_earning,
			e.currency,
			e.created_at,
			o.id,
			o.order_number,
			o.total,
			o.delivered_at
		FROM driver_earnings e
		JOIN orders o ON o.id = e.order_id
		WHERE e.driver_id = ?
		ORDER BY e.created_at DESC
	`, driverID).Rows()
	if err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetDriverEarningsQueryResponse{TotalDeliveries: deliveries, Earnings: make([]EarningView, 0)}
	sum := decimal.Zero

	for rows.Next() {
		var (
			earning                     EarningView
			id, orderID                 uuid.UUID
			gross, fee, net, orderTotal decimal.Decimal
		)
		err = rows.Scan(
			&id,
			&gross,
			&fee,
			&net,
			&earning.Currency,
			&earning.CreatedAt,
			&orderID,
			&earning.Order.OrderNumber,
			&orderTotal,
			&earning.Order.DeliveredAt,
		)
		if err != nil {
			return GetDriverEarningsQueryResponse{}, err
		}

		if earning.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetDriverEarningsQueryResponse{}, err
		}
		if earning.Order.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return GetDriverEarningsQueryResponse{}, err
		}
		amounts := []struct {
			dst *kernel.Money
			src decimal.Decimal
		}{
			{&earning.TotalEarning, gross},
			{&earning.PlatformFee, fee},
			{&earning.NetEarning, net},
			{&earning.Order.Total, orderTotal},
		}
		for _, a := range amounts {
			if *a.dst, err = kernel.NewMoney(a.src); err != nil {
				return GetDriverEarningsQueryResponse{}, err
			}
		}

		sum = sum.Add(net)
		response.Earnings = append(response.Earnings, earning)
	}
	if err = rows.Err(); err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}

	if response.TotalEarnings, err = kernel.NewMoney(sum); err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}
	return response, nil
}
