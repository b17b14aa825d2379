package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// CreateClassroomInput defines the data required to create a classroom.
type CreateClassroomInput struct {
	Name         string
	ShortName    string
	BuildingName string
	Capacity     int
	Computers    int
}

// ClassroomUsecase defines the interface for classroom operations.
type ClassroomUsecase interface {
	Create(ctx context.Context, input *CreateClassroomInput) (*entity.Classroom, error)
	List(ctx context.Context) ([]*entity.Classroom, error)
}
