package middleware

import (
	"strings"

	"directory/config"
	"directory/internal/delivery/api/response"
	"directory/internal/domain/entity"
	"directory/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keySubject = "subject"
	keyRoles   = "roles"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
}

// AuthMiddleware guards write routes with a bearer JWT.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	enabled  bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		enabled:  params.Config.Auth != nil && params.Config.Auth.Enabled,
	}
}

// Authenticate validates the bearer token and stores its subject and roles
// on the echo context. It is a no-op while auth is disabled.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keySubject, claims.Subject)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks the roles stored by Authenticate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.enabled {
				return next(c)
			}

			roles, ok := c.Get(keyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: role information missing")
			}

			if !entity.HasRole(roles, requiredRole) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetSubject returns the token subject stored by Authenticate.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(keySubject).(string)

	return subject, ok && subject != ""
}
