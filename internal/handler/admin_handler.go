package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"peerswipe/internal/model"
	"peerswipe/internal/service"
)

// AdminHandler exposes the moderation operations.
type AdminHandler struct {
	moderation service.ModerationService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(moderation service.ModerationService) *AdminHandler {
	return &AdminHandler{moderation: moderation}
}

// UpdateReportRequest is a partial update; omitted fields are unchanged.
type UpdateReportRequest struct {
	Status         *string `json:"status"`
	ResolutionNote *string `json:"resolutionNote"`
}

// DeleteUserResponse reports what the cascade removed.
type DeleteUserResponse struct {
	Message string                  `json:"message"`
	Deleted *service.CascadeSummary `json:"deleted"`
}

// ListReports godoc
// @Summary List reports
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/reports [get]
func (h *AdminHandler) ListReports(c echo.Context) error {
	reports, err := h.moderation.ListReports(c.Request().Context(), principal(c))
	if err != nil {
		return fail(c, err)
	}

	out := make([]ReportView, 0, len(reports))
	for i := range reports {
		out = append(out, newReportView(&reports[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateReport godoc
// @Summary Update a report
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateReportRequest true "Changes"
// @Success 200 {object} model.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/reports/{id} [patch]
func (h *AdminHandler) UpdateReport(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	upd := service.ReportUpdate{ResolutionNote: req.ResolutionNote}
	if req.Status != nil {
		status := model.ReportStatus(*req.Status)
		upd.Status = &status
	}

	report, err := h.moderation.UpdateReport(c.Request().Context(), principal(c), id, upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// ListMatches godoc
// @Summary List all matches
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} MatchView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/matches [get]
func (h *AdminHandler) ListMatches(c echo.Context) error {
	matches, err := h.moderation.ListMatches(c.Request().Context(), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, matchViews(matches))
}

// CloseMatch godoc
// @Summary Force-close a match
// @Description Deactivates the match and deletes all of its messages.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} MatchView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/matches/{id}/close [patch]
func (h *AdminHandler) CloseMatch(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	match, err := h.moderation.CloseMatch(c.Request().Context(), principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, newMatchView(match))
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AdminUserView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.moderation.ListUsers(c.Request().Context(), principal(c))
	if err != nil {
		return fail(c, err)
	}

	out := make([]AdminUserView, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUserView{
			ID:        u.ID,
			Pseudonym: u.Pseudonym,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// DeleteUser godoc
// @Summary Delete a user and their data
// @Description Removes the user's messages, matches, swipes, problems and related reports in one transaction.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} DeleteUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.moderation.DeleteUser(c.Request().Context(), principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, DeleteUserResponse{Message: "User deleted", Deleted: summary})
}
