package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/entity"
	"sippec/internal/usecase"
)

// MockExamUsecase is a mock implementation of usecase.ExamUsecase.
type MockExamUsecase struct {
	mock.Mock
}

// NewMockExamUsecase creates a mock wired to the test lifecycle.
func NewMockExamUsecase(t *testing.T) *MockExamUsecase {
	m := &MockExamUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockExamUsecase) Create(ctx context.Context, input *usecase.CreateExamInput) (*entity.ExamSchedule, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ExamSchedule), args.Error(1)
}

func (m *MockExamUsecase) GetByID(ctx context.Context, id int64) (*entity.ExamSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ExamSchedule), args.Error(1)
}

func (m *MockExamUsecase) List(ctx context.Context) ([]*entity.ExamSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ExamSchedule), args.Error(1)
}

func (m *MockExamUsecase) Update(ctx context.Context, input *usecase.UpdateExamInput) (*entity.ExamSchedule, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ExamSchedule), args.Error(1)
}
