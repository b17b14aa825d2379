package handler

import (
	"net/http"
	"strconv"

	"sippec/internal/delivery/http/middleware"
	"sippec/internal/delivery/http/response"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExamHandler holds dependencies for exam-schedule handlers.
type ExamHandler struct {
	uc usecase.ExamUsecase
}

// NewExamHandler is the constructor for ExamHandler, injected by Fx.
func NewExamHandler(uc usecase.ExamUsecase) *ExamHandler {
	return &ExamHandler{uc: uc}
}

type examRequest struct {
	Group      string `json:"group" validate:"required"`
	Discipline string `json:"discipline" validate:"required"`
	Examiner   string `json:"examiner"`
	Assistant  string `json:"assistant"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"start" validate:"required"`
	Room       string `json:"room"`
}

// Create handles the request to schedule an exam. The entry is always
// recorded against the calling account, regardless of the request body.
func (h *ExamHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input examRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exam input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Group, discipline, date and start time are required")
	}

	exam, err := h.uc.Create(c.Request().Context(), &usecase.CreateExamInput{
		Group:      input.Group,
		Discipline: input.Discipline,
		Examiner:   input.Examiner,
		Assistant:  input.Assistant,
		Date:       input.Date,
		StartTime:  input.StartTime,
		Room:       input.Room,
		StudentID:  user.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentExam(exam), "Exam scheduled successfully")
}

// List handles the request to list every scheduled exam.
func (h *ExamHandler) List(c echo.Context) error {
	exams, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentExams(exams), "")
}

// Update handles the request to reschedule an exam.
func (h *ExamHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid exam id")
	}

	var input examRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exam input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Group, discipline, date and start time are required")
	}

	exam, err := h.uc.Update(c.Request().Context(), &usecase.UpdateExamInput{
		ID:         id,
		Group:      input.Group,
		Discipline: input.Discipline,
		Examiner:   input.Examiner,
		Assistant:  input.Assistant,
		Date:       input.Date,
		StartTime:  input.StartTime,
		Room:       input.Room,
		StudentID:  user.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentExam(exam), "Exam updated successfully")
}
