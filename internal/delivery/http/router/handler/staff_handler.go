package handler

import (
	"net/http"
	"strconv"

	"sippec/internal/delivery/http/response"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaffHandler holds dependencies for the teaching-staff browse handlers.
type StaffHandler struct {
	uc usecase.StaffUsecase
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(uc usecase.StaffUsecase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Faculties handles the request to list distinct faculty names.
func (h *StaffHandler) Faculties(c echo.Context) error {
	faculties, err := h.uc.Faculties(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, faculties, "")
}

// Departments handles the request to list department names within a faculty.
func (h *StaffHandler) Departments(c echo.Context) error {
	faculty := c.Param("faculty")
	if faculty == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Faculty is required")
	}

	departments, err := h.uc.Departments(c.Request().Context(), faculty)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, departments, "")
}

// Teachers handles the request to list staff for a faculty and department.
func (h *StaffHandler) Teachers(c echo.Context) error {
	faculty := c.Param("faculty")
	department := c.Param("department")
	if faculty == "" || department == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Faculty and department are required")
	}

	teachers, err := h.uc.Teachers(c.Request().Context(), faculty, department)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentStaffList(teachers), "")
}

// TeacherCourses handles the request to list the courses a staff member
// teaches, resolved live against the timetable feed.
func (h *StaffHandler) TeacherCourses(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid staff id")
	}

	courses, err := h.uc.TeacherCourses(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "")
}
