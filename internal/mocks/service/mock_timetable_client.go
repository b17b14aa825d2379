package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/service"
)

// MockTimetableClient is a mock implementation of service.TimetableClient.
type MockTimetableClient struct {
	mock.Mock
}

// NewMockTimetableClient creates a mock wired to the test lifecycle.
func NewMockTimetableClient(t *testing.T) *MockTimetableClient {
	m := &MockTimetableClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTimetableClient) FetchGroups(ctx context.Context) ([]service.GroupRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]service.GroupRecord), args.Error(1)
}

func (m *MockTimetableClient) FetchClassrooms(ctx context.Context) ([]service.ClassroomRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]service.ClassroomRecord), args.Error(1)
}

func (m *MockTimetableClient) FetchStaff(ctx context.Context) ([]service.StaffRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]service.StaffRecord), args.Error(1)
}

func (m *MockTimetableClient) FetchStaffCourses(ctx context.Context, staffFeedID string) ([]string, error) {
	args := m.Called(ctx, staffFeedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}
