package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"inventra/internal/domain/entity"
	"inventra/internal/domain/repository"
)

type AuthMiddleware struct {
	authClient *auth.Client
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(authClient *auth.Client, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

// OptionalAuthenticate resolves the caller's role when a bearer token is
// attached, but lets anonymous requests through untouched. Used on public
// read routes where admins may want to see non-public records.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return next(c)
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return next(c)
		}

		c.Set("uid", token.UID)
		c.Set("role", m.resolveRole(c, token.UID))

		return next(c)
	}
}

// Authenticate verifies the bearer token and resolves the caller's effective
// role. Unknown accounts get the unprivileged role.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", token.UID)
		c.Set("role", m.resolveRole(c, token.UID))

		return next(c)
	}
}

func (m *AuthMiddleware) resolveRole(c echo.Context, uid string) string {
	if user, err := m.userRepo.GetByID(c.Request().Context(), uid); err == nil {
		if user.Role == entity.RoleAdmin {
			return entity.RoleAdmin
		}
	}
	return entity.RoleUser
}
