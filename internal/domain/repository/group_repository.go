package repository

import (
	"context"

	"sippec/internal/domain/entity"
)

// GroupRepository defines the operations for student-group persistence.
// The sync use case replaces the whole table, so deletion and batch insert
// are first-class operations here.
type GroupRepository interface {
	// Create persists a single group.
	Create(ctx context.Context, group *entity.Group) error

	// CreateBatch persists multiple groups in one statement.
	CreateBatch(ctx context.Context, groups []*entity.Group) error

	// FindAll retrieves every group.
	FindAll(ctx context.Context) ([]*entity.Group, error)

	// DeleteAll removes every group row.
	DeleteAll(ctx context.Context) error
}
