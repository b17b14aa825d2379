package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// CreateExamInput defines the data required to schedule an exam. Date uses
// the "2006-01-02" layout and StartTime the "15:04" layout; both are
// validated before anything is persisted.
type CreateExamInput struct {
	Group      string
	Discipline string
	Examiner   string
	Assistant  string
	Date       string
	StartTime  string
	Room       string
	StudentID  int64
}

// UpdateExamInput defines the data required to reschedule an exam.
type UpdateExamInput struct {
	ID         int64
	Group      string
	Discipline string
	Examiner   string
	Assistant  string
	Date       string
	StartTime  string
	Room       string
	StudentID  int64
}

// ExamUsecase defines the interface for exam-schedule operations.
type ExamUsecase interface {
	Create(ctx context.Context, input *CreateExamInput) (*entity.ExamSchedule, error)
	GetByID(ctx context.Context, id int64) (*entity.ExamSchedule, error)
	List(ctx context.Context) ([]*entity.ExamSchedule, error)
	Update(ctx context.Context, input *UpdateExamInput) (*entity.ExamSchedule, error)
}
