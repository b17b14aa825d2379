package handler

import (
	"net/http"

	"sippec/internal/delivery/http/response"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourseHandler holds dependencies for course handlers.
type CourseHandler struct {
	uc usecase.CourseUsecase
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(uc usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

type createCourseRequest struct {
	Name             string `json:"name" validate:"required"`
	OwnerUserID      int64  `json:"owner_user_id" validate:"required"`
	Specialization   string `json:"specialization"`
	UniversitaryYear int    `json:"universitary_year"`
}

// Create handles the request to create a course.
func (h *CourseHandler) Create(c echo.Context) error {
	var input createCourseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Course name and owner are required")
	}

	course, err := h.uc.Create(c.Request().Context(), &usecase.CreateCourseInput{
		Name:             input.Name,
		OwnerUserID:      input.OwnerUserID,
		Specialization:   input.Specialization,
		UniversitaryYear: input.UniversitaryYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentCourse(course), "Course created successfully")
}

// List handles the request to list every course.
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentCourses(courses), "")
}
