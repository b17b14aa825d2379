package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/usecase"
)

// courseService implements the CourseUsecase interface.
type courseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for courseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo: params.CourseRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// Create persists a new course after checking the owning account exists.
func (srv *courseService) Create(ctx context.Context, input *usecase.CreateCourseInput) (*entity.Course, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.OwnerUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("course owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to check course owner")
	}

	course := &entity.Course{
		Name:             input.Name,
		OwnerUserID:      input.OwnerUserID,
		Specialization:   input.Specialization,
		UniversitaryYear: input.UniversitaryYear,
	}

	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}

	return course, nil
}

// List retrieves every course.
func (srv *courseService) List(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}
