package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"peerswipe/internal/model"
	"peerswipe/internal/service"
)

// ProblemHandler handles problem posts, the swipe deck and swipes.
type ProblemHandler struct {
	problemService service.ProblemService
	swipeService   service.SwipeService
}

// NewProblemHandler creates a new problem handler.
func NewProblemHandler(problemService service.ProblemService, swipeService service.SwipeService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService, swipeService: swipeService}
}

// CreateProblemRequest represents a new problem post.
type CreateProblemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=financial relationship career daily other"`
}

// SwipeRequest represents a swipe decision.
type SwipeRequest struct {
	Direction string `json:"direction" validate:"required,oneof=left right"`
}

// SwipeResponse represents the result of a swipe.
type SwipeResponse struct {
	Message string     `json:"message"`
	Match   *MatchView `json:"match,omitempty"`
	Created *bool      `json:"created,omitempty"`
}

// Create godoc
// @Summary Post a problem
// @Tags problems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProblemRequest true "Problem"
// @Success 201 {object} model.ProblemPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /problems [post]
func (h *ProblemHandler) Create(c echo.Context) error {
	var req CreateProblemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	problem, err := h.problemService.Create(c.Request().Context(), principal(c), service.ProblemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.ProblemCategory(req.Category),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, problem)
}

// Mine godoc
// @Summary List my problems
// @Tags problems
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProblemPost
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /problems/mine [get]
func (h *ProblemHandler) Mine(c echo.Context) error {
	problems, err := h.problemService.ListMine(c.Request().Context(), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, problems)
}

// SwipeDeck godoc
// @Summary Swipe deck
// @Description Open problems the caller does not own and has not swiped yet, newest first, at most 20.
// @Tags problems
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProblemPost
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /problems/swipe-deck [get]
func (h *ProblemHandler) SwipeDeck(c echo.Context) error {
	problems, err := h.problemService.SwipeDeck(c.Request().Context(), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, problems)
}

// Close godoc
// @Summary Close a problem
// @Tags problems
// @Produce json
// @Security BearerAuth
// @Param id path string true "Problem ID"
// @Success 200 {object} model.ProblemPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /problems/{id}/close [patch]
func (h *ProblemHandler) Close(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	problem, err := h.problemService.Close(c.Request().Context(), principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, problem)
}

// Swipe godoc
// @Summary Swipe on a problem
// @Description A right swipe on an open problem creates the match, or returns the existing one.
// @Tags problems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Problem ID"
// @Param request body SwipeRequest true "Direction"
// @Success 200 {object} SwipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /problems/{id}/swipe [post]
func (h *ProblemHandler) Swipe(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req SwipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.swipeService.Swipe(c.Request().Context(), principal(c), id, model.SwipeDirection(req.Direction))
	if err != nil {
		return fail(c, err)
	}

	if out.Match == nil {
		return c.JSON(http.StatusOK, SwipeResponse{Message: "Swipe recorded"})
	}
	view := newMatchView(out.Match)
	created := out.Created
	return c.JSON(http.StatusOK, SwipeResponse{
		Message: "Matched",
		Match:   &view,
		Created: &created,
	})
}
