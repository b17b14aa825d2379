package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sippec/internal/domain/repository"
)

// MockRepositoryFactory is a stub RepositoryFactory handing out the mocks it
// was built with. Use it together with MockTransactionManager to observe
// repository calls made inside a transaction.
type MockRepositoryFactory struct {
	UserRepository      repository.UserRepository
	GroupRepository     repository.GroupRepository
	ClassroomRepository repository.ClassroomRepository
	StaffRepository     repository.StaffRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *MockRepositoryFactory) GroupRepo() repository.GroupRepository {
	return f.GroupRepository
}

func (f *MockRepositoryFactory) ClassroomRepo() repository.ClassroomRepository {
	return f.ClassroomRepository
}

func (f *MockRepositoryFactory) StaffRepo() repository.StaffRepository {
	return f.StaffRepository
}

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// When Factory is set, Execute runs the callback against it, mimicking a
// committed transaction; ExecuteErr short-circuits with a failure instead.
type MockTransactionManager struct {
	mock.Mock

	Factory    *MockRepositoryFactory
	ExecuteErr error
}

// NewMockTransactionManager creates a mock wired to the test lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if m.ExecuteErr != nil {
		return m.ExecuteErr
	}
	if m.Factory != nil {
		return fn(m.Factory)
	}

	return m.Called(ctx, fn).Error(0)
}
