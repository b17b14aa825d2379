package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/entity"
)

// MockExamRepository is a mock implementation of repository.ExamRepository.
type MockExamRepository struct {
	mock.Mock
}

// NewMockExamRepository creates a mock wired to the test lifecycle.
func NewMockExamRepository(t *testing.T) *MockExamRepository {
	m := &MockExamRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockExamRepository) Create(ctx context.Context, exam *entity.ExamSchedule) error {
	return m.Called(ctx, exam).Error(0)
}

func (m *MockExamRepository) FindByID(ctx context.Context, id int64) (*entity.ExamSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ExamSchedule), args.Error(1)
}

func (m *MockExamRepository) FindAll(ctx context.Context) ([]*entity.ExamSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ExamSchedule), args.Error(1)
}

func (m *MockExamRepository) Update(ctx context.Context, exam *entity.ExamSchedule) error {
	return m.Called(ctx, exam).Error(0)
}
