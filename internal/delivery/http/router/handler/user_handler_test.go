package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	mockUsecase "sippec/internal/mocks/usecase"
	"sippec/internal/usecase"
)

func TestUserHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	uc.On("Register", mock.Anything, &usecase.RegisterUserInput{
		FirstName: "Ana",
		LastName:  "Pop",
		Email:     "ana@usv.ro",
		Password:  "secret1",
		Role:      "student",
		Type:      "student",
	}).Return(&entity.User{
		ID:           1,
		Email:        "ana@usv.ro",
		PasswordHash: "$2a$12$digest",
		Type:         entity.UserTypeStudent,
	}, nil)

	body := `{"first_name":"Ana","last_name":"Pop","email":"ana@usv.ro","password":"secret1","role":"student","type":"student"}`
	c, rec := newTestContext(http.MethodPost, "/users", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$12$digest")
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	uc.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailTaken)

	body := `{"email":"taken@usv.ro","password":"secret1"}`
	c, _ := newTestContext(http.MethodPost, "/users", body, echo.MIMEApplicationJSON)

	err := h.Register(c)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	body := `{"email":"not-an-email","password":"secret1"}`
	c, rec := newTestContext(http.MethodPost, "/users", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Update(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	uc.On("Update", mock.Anything, mock.MatchedBy(func(input *usecase.UpdateUserInput) bool {
		return input.ID == 7 && input.Email == "ana.pop@usv.ro"
	})).Return(&entity.User{ID: 7, Email: "ana.pop@usv.ro"}, nil)

	body := `{"email":"ana.pop@usv.ro"}`
	c, rec := newTestContext(http.MethodPut, "/users/7", body, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_RegisterDeviceToken(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	uc.On("UpdateDeviceToken", mock.Anything, int64(7), "fcm-token").Return(nil)

	body := `{"device_token":"fcm-token"}`
	c, rec := newTestContext(http.MethodPost, "/users/device-token", body, echo.MIMEApplicationJSON)
	asUser(c, &entity.User{ID: 7})

	require.NoError(t, h.RegisterDeviceToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_RegisterDeviceToken_WithoutGuard(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	body := `{"device_token":"fcm-token"}`
	c, rec := newTestContext(http.MethodPost, "/users/device-token", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.RegisterDeviceToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "UpdateDeviceToken", mock.Anything, mock.Anything, mock.Anything)
}
