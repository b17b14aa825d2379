package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on
// a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations within the function use the same
	// database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside one Execute call shares the same
// atomic unit of work.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// GroupRepo returns a GroupRepository bound to the current transaction.
	GroupRepo() GroupRepository

	// ClassroomRepo returns a ClassroomRepository bound to the current transaction.
	ClassroomRepo() ClassroomRepository

	// StaffRepo returns a StaffRepository bound to the current transaction.
	StaffRepo() StaffRepository
}
