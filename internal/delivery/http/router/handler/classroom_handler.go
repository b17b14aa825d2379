package handler

import (
	"net/http"

	"sippec/internal/delivery/http/response"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClassroomHandler holds dependencies for classroom handlers.
type ClassroomHandler struct {
	uc usecase.ClassroomUsecase
}

// NewClassroomHandler is the constructor for ClassroomHandler, injected by Fx.
func NewClassroomHandler(uc usecase.ClassroomUsecase) *ClassroomHandler {
	return &ClassroomHandler{uc: uc}
}

type createClassroomRequest struct {
	Name         string `json:"name" validate:"required"`
	ShortName    string `json:"short_name"`
	BuildingName string `json:"building_name"`
	Capacity     int    `json:"capacity"`
	Computers    int    `json:"computers"`
}

// Create handles the request to create a classroom.
func (h *ClassroomHandler) Create(c echo.Context) error {
	var input createClassroomRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid classroom input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Classroom name is required")
	}

	classroom, err := h.uc.Create(c.Request().Context(), &usecase.CreateClassroomInput{
		Name:         input.Name,
		ShortName:    input.ShortName,
		BuildingName: input.BuildingName,
		Capacity:     input.Capacity,
		Computers:    input.Computers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentClassroom(classroom), "Classroom created successfully")
}

// List handles the request to list every classroom.
func (h *ClassroomHandler) List(c echo.Context) error {
	classrooms, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentClassrooms(classrooms), "")
}
