package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// CreateGroupInput defines the data required to create a student group.
type CreateGroupInput struct {
	GroupNumber      string
	Specialization   string
	UniversitaryYear int
	Subgroup         string
	Faculty          string
	Type             string
}

// GroupUsecase defines the interface for student-group operations.
type GroupUsecase interface {
	Create(ctx context.Context, input *CreateGroupInput) (*entity.Group, error)
	List(ctx context.Context) ([]*entity.Group, error)
}
