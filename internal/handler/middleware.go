package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"peerswipe/internal/auth"
	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/service"
)

const (
	// ClaimsKey is where the JWT middleware leaves the validated claims.
	ClaimsKey = "user"
	userKey   = "principal"
)

// Authenticate resolves the validated access token into the calling user.
// It must run after the JWT middleware.
func Authenticate(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ClaimsKey).(*auth.Claims)
			user, err := authService.Authenticate(c.Request().Context(), claims)
			if err != nil {
				return fail(c, err)
			}
			c.Set(userKey, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects callers without the admin flag.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !principal(c).IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Message: "Admin access only",
				Code:    errors.KindForbidden.String(),
			})
		}
		return next(c)
	}
}

func currentUser(c echo.Context) *model.User {
	user, _ := c.Get(userKey).(*model.User)
	return user
}

func principal(c echo.Context) model.Principal {
	if user := currentUser(c); user != nil {
		return user.Principal()
	}
	return model.Principal{}
}

func accessClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey).(*auth.Claims)
	return claims
}
