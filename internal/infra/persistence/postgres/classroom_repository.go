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

// classroomRepository implements the domain.ClassroomRepository interface using GORM.
type classroomRepository struct {
	db *gorm.DB
}

// NewClassroomRepository is the constructor for classroomRepository.
func NewClassroomRepository(db *gorm.DB) repository.ClassroomRepository {
	return &classroomRepository{db: db}
}

// Create persists a new classroom.
func (repo *classroomRepository) Create(ctx context.Context, classroom *entity.Classroom) error {
	classroomM := fromClassroomDomain(classroom)

	if err := repo.db.WithContext(ctx).Create(classroomM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create classroom")
	}

	classroom.ID = classroomM.ID

	return nil
}

// FindAll retrieves every classroom ordered by ID.
func (repo *classroomRepository) FindAll(ctx context.Context) ([]*entity.Classroom, error) {
	var models []model.ClassroomModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list classrooms")
	}

	classrooms := make([]*entity.Classroom, 0, len(models))
	for i := range models {
		classrooms = append(classrooms, toClassroomDomain(&models[i]))
	}

	return classrooms, nil
}

// ExistsByName reports whether a classroom with the given name exists. The
// room feed has no stable identifier, so the name serves as the natural key.
func (repo *classroomRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ClassroomModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check classroom existence")
	}

	return count > 0, nil
}

// toClassroomDomain converts a GORM ClassroomModel to a domain Classroom entity.
func toClassroomDomain(data *model.ClassroomModel) *entity.Classroom {
	if data == nil {
		return nil
	}

	return &entity.Classroom{
		ID:           data.ID,
		Name:         data.Name,
		ShortName:    data.ShortName,
		BuildingName: data.BuildingName,
		Capacity:     data.Capacity,
		Computers:    data.Computers,
	}
}

// fromClassroomDomain converts a domain Classroom entity to a GORM ClassroomModel.
func fromClassroomDomain(data *entity.Classroom) *model.ClassroomModel {
	if data == nil {
		return nil
	}

	return &model.ClassroomModel{
		ID:           data.ID,
		Name:         data.Name,
		ShortName:    data.ShortName,
		BuildingName: data.BuildingName,
		Capacity:     data.Capacity,
		Computers:    data.Computers,
	}
}
