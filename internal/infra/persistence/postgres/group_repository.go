package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/infra/persistence/model"
)

// groupRepository implements the domain.GroupRepository interface using GORM.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// Create persists a single group.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID

	return nil
}

// CreateBatch persists multiple groups in one statement.
func (repo *groupRepository) CreateBatch(ctx context.Context, groups []*entity.Group) error {
	if len(groups) == 0 {
		return nil
	}

	models := make([]model.GroupModel, 0, len(groups))
	for _, group := range groups {
		models = append(models, *fromGroupDomain(group))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create groups")
	}

	for i := range models {
		groups[i].ID = models[i].ID
	}

	return nil
}

// FindAll retrieves every group ordered by ID.
func (repo *groupRepository) FindAll(ctx context.Context) ([]*entity.Group, error) {
	var models []model.GroupModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	groups := make([]*entity.Group, 0, len(models))
	for i := range models {
		groups = append(groups, toGroupDomain(&models[i]))
	}

	return groups, nil
}

// DeleteAll removes every group row. Used by the sync flow, which replaces
// the table wholesale.
func (repo *groupRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.GroupModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete groups")
	}

	return nil
}

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:               data.ID,
		GroupNumber:      data.GroupNumber,
		Specialization:   data.Specialization,
		UniversitaryYear: data.UniversitaryYear,
		Subgroup:         data.Subgroup,
		Faculty:          data.Faculty,
		Type:             data.Type,
	}
}

// fromGroupDomain converts a domain Group entity to a GORM GroupModel.
func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:               data.ID,
		GroupNumber:      data.GroupNumber,
		Specialization:   data.Specialization,
		UniversitaryYear: data.UniversitaryYear,
		Subgroup:         data.Subgroup,
		Faculty:          data.Faculty,
		Type:             data.Type,
	}
}
