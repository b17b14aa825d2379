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

// groupService implements the GroupUsecase interface.
type groupService struct {
	groupRepo repository.GroupRepository
	logger    *slog.Logger
}

// GroupServiceParams holds dependencies for groupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		groupRepo: params.GroupRepo,
		logger:    params.Logger,
	}
}

// Create persists a single student group.
func (srv *groupService) Create(ctx context.Context, input *usecase.CreateGroupInput) (*entity.Group, error) {
	group := &entity.Group{
		GroupNumber:      input.GroupNumber,
		Specialization:   input.Specialization,
		UniversitaryYear: input.UniversitaryYear,
		Subgroup:         input.Subgroup,
		Faculty:          input.Faculty,
		Type:             input.Type,
	}

	if err := srv.groupRepo.Create(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to create group")
	}

	return group, nil
}

// List retrieves every student group.
func (srv *groupService) List(ctx context.Context) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}
