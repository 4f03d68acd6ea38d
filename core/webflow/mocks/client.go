package mocks

import (
	"context"

	"search-sync/core/webflow"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of webflow.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchAll(ctx context.Context, collectionID string) ([]webflow.Item, error) {
	args := m.Called(ctx, collectionID)
	if items, ok := args.Get(0).([]webflow.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}
