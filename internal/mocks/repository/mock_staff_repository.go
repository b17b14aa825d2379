package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/entity"
)

// MockStaffRepository is a mock implementation of repository.StaffRepository.
type MockStaffRepository struct {
	mock.Mock
}

// NewMockStaffRepository creates a mock wired to the test lifecycle.
func NewMockStaffRepository(t *testing.T) *MockStaffRepository {
	m := &MockStaffRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id int64) (*entity.TeachingStaff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TeachingStaff), args.Error(1)
}

func (m *MockStaffRepository) FindByFacultyAndDepartment(ctx context.Context, faculty, department string) ([]*entity.TeachingStaff, error) {
	args := m.Called(ctx, faculty, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TeachingStaff), args.Error(1)
}

func (m *MockStaffRepository) Faculties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStaffRepository) DepartmentsByFaculty(ctx context.Context, faculty string) ([]string, error) {
	args := m.Called(ctx, faculty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStaffRepository) CreateBatch(ctx context.Context, staff []*entity.TeachingStaff) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
