package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sippec/internal/domain/entity"
	"sippec/internal/domain/repository"
	"sippec/internal/usecase"
)

// classroomService implements the ClassroomUsecase interface.
type classroomService struct {
	classroomRepo repository.ClassroomRepository
	logger        *slog.Logger
}

// ClassroomServiceParams holds dependencies for classroomService, injected by Fx.
type ClassroomServiceParams struct {
	fx.In

	ClassroomRepo repository.ClassroomRepository
	Logger        *slog.Logger
}

// NewClassroomService is the constructor for classroomService.
func NewClassroomService(params ClassroomServiceParams) usecase.ClassroomUsecase {
	return &classroomService{
		classroomRepo: params.ClassroomRepo,
		logger:        params.Logger,
	}
}

// Create persists a new classroom.
func (srv *classroomService) Create(ctx context.Context, input *usecase.CreateClassroomInput) (*entity.Classroom, error) {
	classroom := &entity.Classroom{
		Name:         input.Name,
		ShortName:    input.ShortName,
		BuildingName: input.BuildingName,
		Capacity:     input.Capacity,
		Computers:    input.Computers,
	}

	if err := srv.classroomRepo.Create(ctx, classroom); err != nil {
		return nil, errors.Wrap(err, "failed to create classroom")
	}

	return classroom, nil
}

// List retrieves every classroom.
func (srv *classroomService) List(ctx context.Context) ([]*entity.Classroom, error) {
	classrooms, err := srv.classroomRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classrooms")
	}

	return classrooms, nil
}
