package repository

import (
	"context"
	"errors"

	"sippec/internal/domain/entity"
)

// ErrExamNotFound is returned when an exam schedule entry is not found.
var ErrExamNotFound = errors.New("exam schedule not found")

// ExamRepository defines the operations for exam-schedule persistence.
type ExamRepository interface {
	// Create persists a new exam schedule entry.
	Create(ctx context.Context, exam *entity.ExamSchedule) error

	// FindByID retrieves a single exam schedule entry by ID.
	FindByID(ctx context.Context, id int64) (*entity.ExamSchedule, error)

	// FindAll retrieves every exam schedule entry.
	FindAll(ctx context.Context) ([]*entity.ExamSchedule, error)

	// Update modifies an existing exam schedule entry.
	Update(ctx context.Context, exam *entity.ExamSchedule) error
}
