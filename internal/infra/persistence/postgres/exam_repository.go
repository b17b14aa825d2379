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

// examRepository implements the domain.ExamRepository interface using GORM.
type examRepository struct {
	db *gorm.DB
}

// NewExamRepository is the constructor for examRepository.
func NewExamRepository(db *gorm.DB) repository.ExamRepository {
	return &examRepository{db: db}
}

// Create persists a new exam schedule entry.
func (repo *examRepository) Create(ctx context.Context, exam *entity.ExamSchedule) error {
	examM := fromExamDomain(exam)

	if err := repo.db.WithContext(ctx).Create(examM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create exam schedule")
	}

	exam.ID = examM.ID

	return nil
}

// FindByID retrieves a single exam schedule entry by ID.
func (repo *examRepository) FindByID(ctx context.Context, id int64) (*entity.ExamSchedule, error) {
	var examM model.ExamScheduleModel
	if err := repo.db.WithContext(ctx).First(&examM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExamNotFound
		}

		return nil, errors.Wrap(err, "failed to find exam schedule by id")
	}

	return toExamDomain(&examM), nil
}

// FindAll retrieves every exam schedule entry ordered by date and start time.
func (repo *examRepository) FindAll(ctx context.Context) ([]*entity.ExamSchedule, error) {
	var models []model.ExamScheduleModel
	if err := repo.db.WithContext(ctx).Order("date, start").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list exam schedules")
	}

	exams := make([]*entity.ExamSchedule, 0, len(models))
	for i := range models {
		exams = append(exams, toExamDomain(&models[i]))
	}

	return exams, nil
}

// Update modifies an existing exam schedule entry.
func (repo *examRepository) Update(ctx context.Context, exam *entity.ExamSchedule) error {
	examM := fromExamDomain(exam)

	result := repo.db.WithContext(ctx).
		Model(&model.ExamScheduleModel{}).
		Where("id = ?", examM.ID).
		Updates(examM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update exam schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExamNotFound
	}

	return nil
}

// toExamDomain converts a GORM ExamScheduleModel to a domain ExamSchedule entity.
func toExamDomain(data *model.ExamScheduleModel) *entity.ExamSchedule {
	if data == nil {
		return nil
	}

	return &entity.ExamSchedule{
		ID:         data.ID,
		Group:      data.Group,
		Discipline: data.Discipline,
		Examiner:   data.Examiner,
		Assistant:  data.Assistant,
		Date:       data.Date,
		StartTime:  data.StartTime,
		Room:       data.Room,
		StudentID:  data.StudentID,
	}
}

// fromExamDomain converts a domain ExamSchedule entity to a GORM ExamScheduleModel.
func fromExamDomain(data *entity.ExamSchedule) *model.ExamScheduleModel {
	if data == nil {
		return nil
	}

	return &model.ExamScheduleModel{
		ID:         data.ID,
		Group:      data.Group,
		Discipline: data.Discipline,
		Examiner:   data.Examiner,
		Assistant:  data.Assistant,
		Date:       data.Date,
		StartTime:  data.StartTime,
		Room:       data.Room,
		StudentID:  data.StudentID,
	}
}
