package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/entity"
)

// MockCourseRepository is a mock implementation of repository.CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

// NewMockCourseRepository creates a mock wired to the test lifecycle.
func NewMockCourseRepository(t *testing.T) *MockCourseRepository {
	m := &MockCourseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Course), args.Error(1)
}
