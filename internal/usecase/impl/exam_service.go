package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/usecase"
)

// Wire layouts for exam dates and start times.
const (
	examDateLayout = "2006-01-02"
	examTimeLayout = "15:04"
)

// examService implements the ExamUsecase interface.
type examService struct {
	examRepo repository.ExamRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ExamServiceParams holds dependencies for examService, injected by Fx.
type ExamServiceParams struct {
	fx.In

	ExamRepo repository.ExamRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewExamService is the constructor for examService.
func NewExamService(params ExamServiceParams) usecase.ExamUsecase {
	return &examService{
		examRepo: params.ExamRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Create schedules a new exam. Date and start time are validated before
// anything is persisted.
func (srv *examService) Create(ctx context.Context, input *usecase.CreateExamInput) (*entity.ExamSchedule, error) {
	date, startTime, err := parseExamTiming(input.Date, input.StartTime)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("recording student does not exist")
		}

		return nil, errors.Wrap(err, "failed to check recording student")
	}

	exam := &entity.ExamSchedule{
		Group:      input.Group,
		Discipline: input.Discipline,
		Examiner:   input.Examiner,
		Assistant:  input.Assistant,
		Date:       date,
		StartTime:  startTime,
		Room:       input.Room,
		StudentID:  input.StudentID,
	}

	if err := srv.examRepo.Create(ctx, exam); err != nil {
		return nil, errors.Wrap(err, "failed to create exam schedule")
	}

	return exam, nil
}

// GetByID retrieves a single exam schedule entry.
func (srv *examService) GetByID(ctx context.Context, id int64) (*entity.ExamSchedule, error) {
	exam, err := srv.examRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			return nil, errors.Wrap(domainerrors.ErrExamNotFound, "exam lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find exam schedule")
	}

	return exam, nil
}

// List retrieves every exam schedule entry.
func (srv *examService) List(ctx context.Context) ([]*entity.ExamSchedule, error) {
	exams, err := srv.examRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exam schedules")
	}

	return exams, nil
}

// Update reschedules an existing exam.
func (srv *examService) Update(ctx context.Context, input *usecase.UpdateExamInput) (*entity.ExamSchedule, error) {
	date, startTime, err := parseExamTiming(input.Date, input.StartTime)
	if err != nil {
		return nil, err
	}

	exam, err := srv.examRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			return nil, errors.Wrap(domainerrors.ErrExamNotFound, "exam update failed")
		}

		return nil, errors.Wrap(err, "failed to find exam schedule")
	}

	exam.Group = input.Group
	exam.Discipline = input.Discipline
	exam.Examiner = input.Examiner
	exam.Assistant = input.Assistant
	exam.Date = date
	exam.StartTime = startTime
	exam.Room = input.Room
	exam.StudentID = input.StudentID

	if err := srv.examRepo.Update(ctx, exam); err != nil {
		return nil, errors.Wrap(err, "failed to update exam schedule")
	}

	srv.logger.Debug("Exam schedule updated", slog.Int64("examID", exam.ID))

	return exam, nil
}

// parseExamTiming validates the wire form of the date and start time and
// normalizes the start time back to "HH:MM".
func parseExamTiming(rawDate, rawStart string) (time.Time, string, error) {
	date, err := time.Parse(examDateLayout, rawDate)
	if err != nil {
		return time.Time{}, "", domainerrors.ErrValidationFailed.WrapMessage("date must use the YYYY-MM-DD format")
	}

	start, err := time.Parse(examTimeLayout, rawStart)
	if err != nil {
		return time.Time{}, "", domainerrors.ErrValidationFailed.WrapMessage("start time must use the HH:MM format")
	}

	return date, start.Format(examTimeLayout), nil
}
