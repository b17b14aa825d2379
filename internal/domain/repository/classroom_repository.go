package repository

import (
	"context"

	"sippec/internal/domain/entity"
)

// ClassroomRepository defines the operations for classroom persistence.
type ClassroomRepository interface {
	// Create persists a new classroom.
	Create(ctx context.Context, classroom *entity.Classroom) error

	// FindAll retrieves every classroom.
	FindAll(ctx context.Context) ([]*entity.Classroom, error)

	// ExistsByName reports whether a classroom with the given name exists.
	// The room feed has no stable identifier, so the name is the natural key.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
