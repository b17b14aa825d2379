package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "sippec/internal/delivery/context"
	"sippec/internal/domain/entity"
	mockUsecase "sippec/internal/mocks/usecase"
	"sippec/internal/usecase"
)

func asUser(c echo.Context, user *entity.User) {
	c.Set(string(deliverycontext.KeyUser), user)
}

func TestExamHandler_Create_ForcesCallerAsStudent(t *testing.T) {
	uc := mockUsecase.NewMockExamUsecase(t)
	h := NewExamHandler(uc)

	uc.On("Create", mock.Anything, mock.MatchedBy(func(input *usecase.CreateExamInput) bool {
		// The entry belongs to the caller regardless of the body.
		return input.StudentID == 7 && input.Discipline == "Operating Systems"
	})).Return(&entity.ExamSchedule{
		ID:         3,
		Group:      "3131",
		Discipline: "Operating Systems",
		Date:       time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		StudentID:  7,
	}, nil)

	body := `{"group":"3131","discipline":"Operating Systems","date":"2026-02-03","start":"09:00","student_id":999}`
	c, rec := newTestContext(http.MethodPost, "/exams", body, echo.MIMEApplicationJSON)
	asUser(c, &entity.User{ID: 7})

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-02-03"`)
	assert.Contains(t, rec.Body.String(), `"start":"09:00"`)
}

func TestExamHandler_Create_RequiresAuthentication(t *testing.T) {
	uc := mockUsecase.NewMockExamUsecase(t)
	h := NewExamHandler(uc)

	body := `{"group":"3131","discipline":"Operating Systems","date":"2026-02-03","start":"09:00"}`
	c, rec := newTestContext(http.MethodPost, "/exams", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExamHandler_Update_RejectsBadID(t *testing.T) {
	uc := mockUsecase.NewMockExamUsecase(t)
	h := NewExamHandler(uc)

	c, rec := newTestContext(http.MethodPut, "/exams/abc", `{}`, echo.MIMEApplicationJSON)
	asUser(c, &entity.User{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
