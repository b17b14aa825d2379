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

// courseRepository implements the domain.CourseRepository interface using GORM.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// Create persists a new course.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.ID = courseM.ID

	return nil
}

// FindAll retrieves every course ordered by ID.
func (repo *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	var models []model.CourseModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(models))
	for i := range models {
		courses = append(courses, toCourseDomain(&models[i]))
	}

	return courses, nil
}

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	return &entity.Course{
		ID:               data.ID,
		Name:             data.Name,
		OwnerUserID:      data.OwnerUserID,
		Specialization:   data.Specialization,
		UniversitaryYear: data.UniversitaryYear,
	}
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel.
func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:               data.ID,
		Name:             data.Name,
		OwnerUserID:      data.OwnerUserID,
		Specialization:   data.Specialization,
		UniversitaryYear: data.UniversitaryYear,
	}
}
