package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"peerswipe/internal/service"
)

// ReportHandler lets users flag content.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest names exactly one of targetProblemId or targetMessageId.
type CreateReportRequest struct {
	TargetProblemID string `json:"targetProblemId" validate:"omitempty,uuid"`
	TargetMessageID string `json:"targetMessageId" validate:"omitempty,uuid"`
	Reason        string `json:"reason" validate:"required"`
}

func optionalID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// Create godoc
// @Summary Report a problem or a message
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} model.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req CreateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.reportService.Create(c.Request().Context(), principal(c), service.ReportInput{
		TargetProblemID: optionalID(req.TargetProblemID),
		TargetMessageID: optionalID(req.TargetMessageID),
		Reason:          req.Reason,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, report)
}
