package middleware

import (
	"strings"

	deliverycontext "sippec/internal/delivery/context"
	"sippec/internal/delivery/http/response"
	"sippec/internal/domain/entity"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards protected endpoints with bearer-token authentication.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the Authorization header, resolves the calling
// account and stores it on the context for handlers. Every failure mode
// answers the same 401 so callers cannot probe which check tripped.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUsecase.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyUser), user)

		return next(c)
	}
}

// CurrentUser returns the account stored by Authenticate. The second return
// is false on routes that skipped the guard.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(deliverycontext.KeyUser)).(*entity.User)

	return user, ok
}
