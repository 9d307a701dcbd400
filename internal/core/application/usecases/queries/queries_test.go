package queries_test

import (
	"testing"

	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueriesNotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"GetOrderQuery", queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		{"TrackOrderQuery", queries.TrackOrderQuery{}.Validate, queries.ErrTrackOrderQueryIsNotConstructed},
		{"GetAvailableOrdersQuery", queries.GetAvailableOrdersQuery{}.Validate, queries.ErrGetAvailableOrdersQueryIsNotConstructed},
		{"GetDriverOrdersQuery", queries.GetDriverOrdersQuery{}.Validate, queries.ErrGetDriverOrdersQueryIsNotConstructed},
		{"GetDriverEarningsQuery", queries.GetDriverEarningsQuery{}.Validate, queries.ErrGetDriverEarningsQueryIsNotConstructed},
		{"GetAllDriversQuery", queries.GetAllDriversQuery{}.Validate, queries.ErrGetAllDriversQueryIsNotConstructed},
		{"GetRestaurantQuery", queries.GetRestaurantQuery{}.Validate, queries.ErrGetRestaurantQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestNewGetOrderQuery(t *testing.T) {
	principal := kernel.Principal{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}

	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(orderID, principal)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, orderID, query.OrderID())
		assert.Equal(t, principal, query.Principal())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{}, principal)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("anonymous principal", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.Principal{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTrackOrderQuery(t *testing.T) {
	t.Run("trims the number", func(t *testing.T) {
		query, err := queries.NewTrackOrderQuery("  ORD-20260101-0001 ", nil)

		require.NoError(t, err)
		assert.Equal(t, "ORD-20260101-0001", query.OrderNumber())
		assert.Nil(t, query.Principal())
	})

	t.Run("blank number", func(t *testing.T) {
		_, err := queries.NewTrackOrderQuery(" ", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetDriverOrdersQuery(t *testing.T) {
	t.Run("without status", func(t *testing.T) {
		query, err := queries.NewGetDriverOrdersQuery(kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Nil(t, query.Status())
	})

	t.Run("with status", func(t *testing.T) {
		status := order.Delivered
		query, err := queries.NewGetDriverOrdersQuery(kernel.NewUUID(), &status)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, *query.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		status := order.Unknown
		_, err := queries.NewGetDriverOrdersQuery(kernel.NewUUID(), &status)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero user id", func(t *testing.T) {
		_, err := queries.NewGetDriverOrdersQuery(kernel.UUID{}, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetDriverEarningsQuery(t *testing.T) {
	_, err := queries.NewGetDriverEarningsQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetDriverEarningsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetRestaurantQuery(t *testing.T) {
	_, err := queries.NewGetRestaurantQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	id := kernel.NewUUID()
	query, err := queries.NewGetRestaurantQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.RestaurantID())
}

func TestRestaurantView_IsOwnedBy(t *testing.T) {
	owner := kernel.NewUUID()
	view := queries.RestaurantView{ID: kernel.NewUUID(), OwnerID: owner}

	assert.True(t, view.IsOwnedBy(owner))
	assert.False(t, view.IsOwnedBy(kernel.NewUUID()))
}
