package commands_test

import (
	"testing"

	"orderdispatch/internal/core/application/usecases/commands"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/services"
	"orderdispatch/internal/core/ports"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDriverLocationCommand(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{"valid", 51.5, -0.12, nil},
		{"latitude out of range", 91, 0, errs.ErrValueIsOutOfRange},
		{"longitude out of range", 0, -181, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewUpdateDriverLocationCommand(kernel.NewUUID(), tt.latitude, tt.longitude, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateDriverLocationCommandHandler_Handle_WithOrder(t *testing.T) {
	ctx := t.Context()
	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockPublisher)

	o := newReadyOrder(t)
	d := newDriver(t)
	require.NoError(t, services.NewOrderDispatcher().Claim(o, d, o.UpdatedAt()))
	orderID := o.ID()

	cmd, err := commands.NewUpdateDriverLocationCommand(d.UserID(), 40.75, -73.99, &orderID)
	require.NoError(t, err)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetByUserID", ctx, d.UserID()).Return(d, nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		driverRepo.On("UpdateLocation", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, ports.OrderRoom(orderID), ports.EventDriverLocation,
		mock.MatchedBy(func(p commands.DriverLocationPayload) bool {
			return p.DriverID == d.ID().String() && p.Latitude == 40.75 && p.Longitude == -73.99
		})).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, publisher)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.InDelta(t, 40.75, d.Location().Latitude(), 1e-9)
	driverRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateDriverLocationCommandHandler_Handle_WithoutOrder(t *testing.T) {
	ctx := t.Context()
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockPublisher)
	d := newDriver(t)

	cmd, err := commands.NewUpdateDriverLocationCommand(d.UserID(), 10, 20, nil)
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("GetByUserID", ctx, d.UserID()).Return(d, nil).Once()
	driverRepo.On("UpdateLocation", ctx, d).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, publisher)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.NotNil(t, d.LastLocationUpdate())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDriverLocationCommandHandler_Handle_OrderOfAnotherDriver(t *testing.T) {
	ctx := t.Context()
	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockPublisher)

	o := newReadyOrder(t)
	assignee := newDriver(t)
	intruder := newDriver(t)
	require.NoError(t, services.NewOrderDispatcher().Claim(o, assignee, o.UpdatedAt()))
	orderID := o.ID()

	cmd, err := commands.NewUpdateDriverLocationCommand(intruder.UserID(), 1, 1, &orderID)
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("GetByUserID", ctx, intruder.UserID()).Return(intruder, nil).Once()
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, publisher)

	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrForbidden)
	driverRepo.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
