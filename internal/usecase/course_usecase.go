package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// CreateCourseInput defines the data required to create a course.
type CreateCourseInput struct {
	Name             string
	OwnerUserID      int64
	Specialization   string
	UniversitaryYear int
}

// CourseUsecase defines the interface for course operations.
type CourseUsecase interface {
	Create(ctx context.Context, input *CreateCourseInput) (*entity.Course, error)
	List(ctx context.Context) ([]*entity.Course, error)
}
