package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type commandHandlerMock[C any] struct {
	mock.Mock
}

func (m *commandHandlerMock[C]) Handle(ctx context.Context, command C) error {
	return m.Called(ctx, command).Error(0)
}

type handlerMock[In, Out any] struct {
	mock.Mock
}

func (m *handlerMock[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(Out)
	return out, args.Error(1)
}
