package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Dispatcher is a mock implementation of webhook.Dispatcher
type Dispatcher struct {
	mock.Mock
}

func (m *Dispatcher) DispatchSync(ctx context.Context, origin string) error {
	args := m.Called(ctx, origin)
	return args.Error(0)
}
