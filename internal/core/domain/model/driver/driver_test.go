package driver_test

import (
	"testing"
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func createValidDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "Dave")
	require.NoError(t, err)
	return d
}

func createValidLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func TestNewDriver(t *testing.T) {
	t.Run("should create available driver", func(t *testing.T) {
		d := createValidDriver(t)

		require.NoError(t, d.Validate())
		assert.True(t, d.IsAvailable())
		assert.Nil(t, d.Location())
		assert.True(t, d.TotalEarnings().IsZero())
		assert.Equal(t, 0, d.TotalDeliveries())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "  ")

		require.ErrorIs(t, err, driver.ErrNameIsRequired)
		assert.Nil(t, d)
	})

	t.Run("should join errors for invalid ids", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, kernel.UUID{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_TakeOrder(t *testing.T) {
	t.Run("seeds location from delivery coordinates", func(t *testing.T) {
		d := createValidDriver(t)
		seed := createValidLocation(t, 40.7128, -74.006)

		require.NoError(t, d.TakeOrder(&seed, now))

		assert.False(t, d.IsAvailable())
		require.NotNil(t, d.Location())
		assert.True(t, d.Location().IsEqual(seed))
		assert.Equal(t, now, *d.LastLocationUpdate())
	})

	t.Run("keeps location when order has no coordinates", func(t *testing.T) {
		d := createValidDriver(t)

		require.NoError(t, d.TakeOrder(nil, now))

		assert.False(t, d.IsAvailable())
		assert.Nil(t, d.Location())
	})

	t.Run("busy driver cannot take a second order", func(t *testing.T) {
		d := createValidDriver(t)
		require.NoError(t, d.TakeOrder(nil, now))

		require.ErrorIs(t, d.TakeOrder(nil, now), errs.ErrConflict)
	})
}

func TestDriver_CompleteDelivery(t *testing.T) {
	d := createValidDriver(t)
	require.NoError(t, d.TakeOrder(nil, now))

	d.CompleteDelivery(kernel.MustMoney("4.00"))
	require.NoError(t, d.TakeOrder(nil, now))
	d.CompleteDelivery(kernel.MustMoney("5.86"))

	assert.True(t, d.IsAvailable())
	assert.Equal(t, 2, d.TotalDeliveries())
	assert.Equal(t, "9.86", d.TotalEarnings().String())
}

func TestDriver_Release(t *testing.T) {
	d := createValidDriver(t)
	require.NoError(t, d.TakeOrder(nil, now))

	d.Release()

	assert.True(t, d.IsAvailable())
	assert.Equal(t, 0, d.TotalDeliveries())
}

func TestDriver_UpdateLocation(t *testing.T) {
	d := createValidDriver(t)
	first := createValidLocation(t, 1, 1)
	second := createValidLocation(t, 2, 2)

	require.NoError(t, d.UpdateLocation(first, now))
	require.NoError(t, d.UpdateLocation(second, now.Add(time.Second)))

	assert.True(t, d.Location().IsEqual(second))
	assert.Equal(t, now.Add(time.Second), *d.LastLocationUpdate())

	require.ErrorIs(t, d.UpdateLocation(kernel.Location{}, now), kernel.ErrLocationIsNotConstructed)
}

func TestRestoreDriver(t *testing.T) {
	loc := createValidLocation(t, 10, 20)
	d, err := driver.RestoreDriver(driver.Snapshot{
		ID:              kernel.NewUUID(),
		UserID:          kernel.NewUUID(),
		Name:            "Dave",
		IsAvailable:     false,
		Location:        &loc,
		TotalEarnings:   kernel.MustMoney("12.00"),
		TotalDeliveries: 3,
		Version:         4,
	})

	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.False(t, d.IsAvailable())
	assert.Equal(t, 3, d.TotalDeliveries())
	assert.Equal(t, int64(4), d.Version())
}
