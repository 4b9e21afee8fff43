package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"peerswipe/internal/auth"
	"peerswipe/internal/config"
	"peerswipe/internal/errors"
	"peerswipe/internal/handler"
	"peerswipe/internal/service"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth    *handler.AuthHandler
	Problem *handler.ProblemHandler
	Match   *handler.MatchHandler
	Report  *handler.ReportHandler
	Admin   *handler.AdminHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authService service.AuthService,
	h Handlers,
) {
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.ClientOrigin,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	limiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS)))

	api := e.Group("/api")

	// Public routes
	public := api.Group("/auth", limiter)
	public.POST("/register", h.Auth.Register)
	public.POST("/login", h.Auth.Login)
	public.POST("/refresh", h.Auth.Refresh)

	// Secured routes (require a valid access token for a live user)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.ClaimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.TokenCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateAccessToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Message: "Unauthenticated",
				Code:    errors.KindUnauthenticated.String(),
			})
		},
	}), handler.Authenticate(authService))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/auth/me", h.Auth.Me)

	// Problem routes
	secured.POST("/problems", h.Problem.Create)
	secured.GET("/problems/mine", h.Problem.Mine)
	secured.GET("/problems/swipe-deck", h.Problem.SwipeDeck)
	secured.PATCH("/problems/:id/close", h.Problem.Close)
	secured.POST("/problems/:id/swipe", h.Problem.Swipe, limiter)

	// Match routes
	secured.GET("/matches", h.Match.List)
	secured.PATCH("/matches/:id/close", h.Match.Close)
	secured.GET("/matches/:id/messages", h.Match.Messages)
	secured.POST("/matches/:id/messages", h.Match.PostMessage)

	// Report routes
	secured.POST("/reports", h.Report.Create)

	// Admin routes
	admin := secured.Group("/admin", handler.RequireAdmin)
	admin.GET("/reports", h.Admin.ListReports)
	admin.PATCH("/reports/:id", h.Admin.UpdateReport)
	admin.GET("/matches", h.Admin.ListMatches)
	admin.PATCH("/matches/:id/close", h.Admin.CloseMatch)
	admin.GET("/users", h.Admin.ListUsers)
	admin.DELETE("/users/:id", h.Admin.DeleteUser)
}

// HTTPErrorHandler renders every error as {message, code}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := errors.ErrorResponse{Message: "Unexpected error", Code: errors.KindUnexpected.String()}

	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		status = he.Code
		switch msg := he.Message.(type) {
		case errors.ErrorResponse:
			body = msg
		case string:
			body = errors.ErrorResponse{Message: msg, Code: codeForStatus(status)}
		default:
			body = errors.ErrorResponse{Message: http.StatusText(status), Code: codeForStatus(status)}
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return errors.KindValidation.String()
	case http.StatusUnauthorized:
		return errors.KindUnauthenticated.String()
	case http.StatusForbidden:
		return errors.KindForbidden.String()
	case http.StatusNotFound:
		return errors.KindNotFound.String()
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	}
	if status >= http.StatusInternalServerError {
		return errors.KindUnexpected.String()
	}
	return ""
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
