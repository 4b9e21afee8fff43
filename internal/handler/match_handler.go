package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"peerswipe/internal/service"
)

// MatchHandler handles a participant's matches and chat.
type MatchHandler struct {
	matchService service.MatchService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matchService service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// PostMessageRequest represents a chat message.
type PostMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// List godoc
// @Summary List my active matches
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} MatchView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.matchService.ListActive(c.Request().Context(), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, matchViews(matches))
}

// Close godoc
// @Summary Close a match
// @Description Owner or helper only. Messages are kept.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} MatchView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /matches/{id}/close [patch]
func (h *MatchHandler) Close(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	match, err := h.matchService.Close(c.Request().Context(), principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, newMatchView(match))
}

// Messages godoc
// @Summary List messages of a match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {array} MessageView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /matches/{id}/messages [get]
func (h *MatchHandler) Messages(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.matchService.ListMessages(c.Request().Context(), principal(c), id)
	if err != nil {
		return fail(c, err)
	}

	out := make([]MessageView, 0, len(messages))
	for i := range messages {
		out = append(out, newMessageView(&messages[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// PostMessage godoc
// @Summary Send a message
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body PostMessageRequest true "Message"
// @Success 201 {object} MessageView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /matches/{id}/messages [post]
func (h *MatchHandler) PostMessage(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req PostMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.matchService.PostMessage(c.Request().Context(), principal(c), id, req.Content)
	if err != nil {
		return fail(c, err)
	}
	message.Sender = currentUser(c)
	return c.JSON(http.StatusCreated, newMessageView(message))
}
