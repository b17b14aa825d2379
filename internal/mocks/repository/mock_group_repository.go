package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/entity"
)

// MockGroupRepository is a mock implementation of repository.GroupRepository.
type MockGroupRepository struct {
	mock.Mock
}

// NewMockGroupRepository creates a mock wired to the test lifecycle.
func NewMockGroupRepository(t *testing.T) *MockGroupRepository {
	m := &MockGroupRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGroupRepository) Create(ctx context.Context, group *entity.Group) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockGroupRepository) CreateBatch(ctx context.Context, groups []*entity.Group) error {
	return m.Called(ctx, groups).Error(0)
}

func (m *MockGroupRepository) FindAll(ctx context.Context) ([]*entity.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Group), args.Error(1)
}

func (m *MockGroupRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
