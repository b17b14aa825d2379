package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	mockRepo "sippec/internal/mocks/repository"
	"sippec/internal/usecase"
)

func createTestExamService(t *testing.T) (usecase.ExamUsecase, *mockRepo.MockExamRepository, *mockRepo.MockUserRepository) {
	examRepo := mockRepo.NewMockExamRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewExamService(ExamServiceParams{
		ExamRepo: examRepo,
		UserRepo: userRepo,
		Logger:   logger,
	})

	return svc, examRepo, userRepo
}

func TestExamService_Create_Success(t *testing.T) {
	svc, examRepo, userRepo := createTestExamService(t)

	userRepo.On("FindByID", mock.Anything, int64(7)).Return(&entity.User{ID: 7}, nil)
	examRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.ExamSchedule) bool {
		return e.Discipline == "Operating Systems" &&
			e.Date.Equal(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)) &&
			e.StartTime == "09:00"
	})).Return(nil)

	exam, err := svc.Create(context.Background(), &usecase.CreateExamInput{
		Group:      "3131",
		Discipline: "Operating Systems",
		Examiner:   "Pop Ana",
		Date:       "2026-02-03",
		StartTime:  "09:00",
		Room:       "C201",
		StudentID:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "3131", exam.Group)
}

func TestExamService_Create_RejectsBadTiming(t *testing.T) {
	svc, examRepo, _ := createTestExamService(t)

	cases := []struct {
		name      string
		date      string
		startTime string
	}{
		{"bad date format", "03-02-2026", "09:00"},
		{"empty date", "", "09:00"},
		{"bad time format", "2026-02-03", "9am"},
		{"time out of range", "2026-02-03", "25:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &usecase.CreateExamInput{
				Date:      tc.date,
				StartTime: tc.startTime,
				StudentID: 7,
			})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	examRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExamService_Create_UnknownStudent(t *testing.T) {
	svc, examRepo, userRepo := createTestExamService(t)

	userRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Create(context.Background(), &usecase.CreateExamInput{
		Date:      "2026-02-03",
		StartTime: "09:00",
		StudentID: 99,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	examRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExamService_Update_Success(t *testing.T) {
	svc, examRepo, _ := createTestExamService(t)

	existing := &entity.ExamSchedule{
		ID:         3,
		Group:      "3131",
		Discipline: "Operating Systems",
		Date:       time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		StudentID:  7,
	}
	examRepo.On("FindByID", mock.Anything, int64(3)).Return(existing, nil)
	examRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *entity.ExamSchedule) bool {
		return e.ID == 3 && e.StartTime == "11:30" && e.Room == "C202"
	})).Return(nil)

	exam, err := svc.Update(context.Background(), &usecase.UpdateExamInput{
		ID:         3,
		Group:      "3131",
		Discipline: "Operating Systems",
		Date:       "2026-02-10",
		StartTime:  "11:30",
		Room:       "C202",
		StudentID:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30", exam.StartTime)
}

func TestExamService_Update_NotFound(t *testing.T) {
	svc, examRepo, _ := createTestExamService(t)

	examRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrExamNotFound)

	_, err := svc.Update(context.Background(), &usecase.UpdateExamInput{
		ID:        404,
		Date:      "2026-02-10",
		StartTime: "11:30",
	})
	assert.ErrorIs(t, err, domainerrors.ErrExamNotFound)
}

func TestExamService_GetByID_NotFound(t *testing.T) {
	svc, examRepo, _ := createTestExamService(t)

	examRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrExamNotFound)

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domainerrors.ErrExamNotFound)
}
