package repository

import (
	"context"

	"sippec/internal/domain/entity"
)

// CourseRepository defines the operations for course persistence.
type CourseRepository interface {
	// Create persists a new course.
	Create(ctx context.Context, course *entity.Course) error

	// FindAll retrieves every course.
	FindAll(ctx context.Context) ([]*entity.Course, error)
}
