package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/entity"
)

// MockClassroomRepository is a mock implementation of repository.ClassroomRepository.
type MockClassroomRepository struct {
	mock.Mock
}

// NewMockClassroomRepository creates a mock wired to the test lifecycle.
func NewMockClassroomRepository(t *testing.T) *MockClassroomRepository {
	m := &MockClassroomRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockClassroomRepository) Create(ctx context.Context, classroom *entity.Classroom) error {
	return m.Called(ctx, classroom).Error(0)
}

func (m *MockClassroomRepository) FindAll(ctx context.Context) ([]*entity.Classroom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Classroom), args.Error(1)
}

func (m *MockClassroomRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)

	return args.Bool(0), args.Error(1)
}
