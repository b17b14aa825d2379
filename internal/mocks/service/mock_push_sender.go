package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockPushSender is a mock implementation of service.PushSender.
type MockPushSender struct {
	mock.Mock
}

// NewMockPushSender creates a mock wired to the test lifecycle.
func NewMockPushSender(t *testing.T) *MockPushSender {
	m := &MockPushSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	return m.Called(ctx, token, title, body, data).Error(0)
}
