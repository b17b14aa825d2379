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

// staffRepository implements the domain.StaffRepository interface using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

// FindByID retrieves a single staff record by ID.
func (repo *staffRepository) FindByID(ctx context.Context, id int64) (*entity.TeachingStaff, error) {
	var staffM model.TeachingStaffModel
	if err := repo.db.WithContext(ctx).First(&staffM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by id")
	}

	return toStaffDomain(&staffM), nil
}

// FindByFacultyAndDepartment retrieves staff records for a faculty and
// department pair, ordered by last name.
func (repo *staffRepository) FindByFacultyAndDepartment(ctx context.Context, faculty, department string) ([]*entity.TeachingStaff, error) {
	var models []model.TeachingStaffModel
	if err := repo.db.WithContext(ctx).
		Where("faculty = ? AND department = ?", faculty, department).
		Order("last_name, first_name").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list staff by faculty and department")
	}

	staff := make([]*entity.TeachingStaff, 0, len(models))
	for i := range models {
		staff = append(staff, toStaffDomain(&models[i]))
	}

	return staff, nil
}

// Faculties retrieves the distinct non-empty faculty names.
func (repo *staffRepository) Faculties(ctx context.Context) ([]string, error) {
	var faculties []string
	if err := repo.db.WithContext(ctx).
		Model(&model.TeachingStaffModel{}).
		Where("faculty <> ''").
		Distinct("faculty").
		Order("faculty").
		Pluck("faculty", &faculties).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list faculties")
	}

	return faculties, nil
}

// DepartmentsByFaculty retrieves the distinct non-empty department names
// within a faculty.
func (repo *staffRepository) DepartmentsByFaculty(ctx context.Context, faculty string) ([]string, error) {
	var departments []string
	if err := repo.db.WithContext(ctx).
		Model(&model.TeachingStaffModel{}).
		Where("faculty = ? AND department <> ''", faculty).
		Distinct("department").
		Order("department").
		Pluck("department", &departments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// CreateBatch persists multiple staff records in one statement.
func (repo *staffRepository) CreateBatch(ctx context.Context, staff []*entity.TeachingStaff) error {
	if len(staff) == 0 {
		return nil
	}

	models := make([]model.TeachingStaffModel, 0, len(staff))
	for _, record := range staff {
		models = append(models, *fromStaffDomain(record))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff records")
	}

	for i := range models {
		staff[i].ID = models[i].ID
	}

	return nil
}

// DeleteAll removes every staff row. Used by the sync flow, which replaces
// the table wholesale.
func (repo *staffRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.TeachingStaffModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete staff records")
	}

	return nil
}

// toStaffDomain converts a GORM TeachingStaffModel to a domain TeachingStaff entity.
func toStaffDomain(data *model.TeachingStaffModel) *entity.TeachingStaff {
	if data == nil {
		return nil
	}

	return &entity.TeachingStaff{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		LastName:   data.LastName,
		FirstName:  data.FirstName,
		Email:      data.Email,
		Phone:      data.Phone,
		Faculty:    data.Faculty,
		Department: data.Department,
	}
}

// fromStaffDomain converts a domain TeachingStaff entity to a GORM TeachingStaffModel.
func fromStaffDomain(data *entity.TeachingStaff) *model.TeachingStaffModel {
	if data == nil {
		return nil
	}

	return &model.TeachingStaffModel{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		LastName:   data.LastName,
		FirstName:  data.FirstName,
		Email:      data.Email,
		Phone:      data.Phone,
		Faculty:    data.Faculty,
		Department: data.Department,
	}
}
