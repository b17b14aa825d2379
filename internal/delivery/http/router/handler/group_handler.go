package handler

import (
	"net/http"

	"sippec/internal/delivery/http/response"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GroupHandler holds dependencies for student-group handlers.
type GroupHandler struct {
	uc usecase.GroupUsecase
}

// NewGroupHandler is the constructor for GroupHandler, injected by Fx.
func NewGroupHandler(uc usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

type createGroupRequest struct {
	GroupNumber      string `json:"group_nr" validate:"required"`
	Specialization   string `json:"specialization" validate:"required"`
	UniversitaryYear int    `json:"universitary_year"`
	Subgroup         string `json:"subgroup"`
	Faculty          string `json:"faculty"`
	Type             string `json:"type"`
}

// Create handles the request to create a student group.
func (h *GroupHandler) Create(c echo.Context) error {
	var input createGroupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Group number and specialization are required")
	}

	group, err := h.uc.Create(c.Request().Context(), &usecase.CreateGroupInput{
		GroupNumber:      input.GroupNumber,
		Specialization:   input.Specialization,
		UniversitaryYear: input.UniversitaryYear,
		Subgroup:         input.Subgroup,
		Faculty:          input.Faculty,
		Type:             input.Type,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentGroup(group), "Group created successfully")
}

// List handles the request to list every student group.
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentGroups(groups), "")
}
