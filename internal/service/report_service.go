package service

import (
	"context"

	"github.com/google/uuid"

	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

// ReportInput names exactly one target and a reason.
type ReportInput struct {
	TargetProblemID *uuid.UUID
	TargetMessageID *uuid.UUID
	Reason          string
}

// ReportService lets users flag problems and messages for moderation.
type ReportService interface {
	Create(ctx context.Context, p model.Principal, in ReportInput) (*model.Report, error)
}

type reportService struct {
	reports  repository.ReportRepository
	problems repository.ProblemRepository
	messages repository.MessageRepository
}

// NewReportService creates a new report service.
func NewReportService(
	reports repository.ReportRepository,
	problems repository.ProblemRepository,
	messages repository.MessageRepository,
) ReportService {
	return &reportService{
		reports:  reports,
		problems: problems,
		messages: messages,
	}
}

func (s *reportService) Create(ctx context.Context, p model.Principal, in ReportInput) (*model.Report, error) {
	hasProblem := in.TargetProblemID != nil && *in.TargetProblemID != uuid.Nil
	hasMessage := in.TargetMessageID != nil && *in.TargetMessageID != uuid.Nil
	if hasProblem == hasMessage {
		return nil, errors.Validation("Exactly one target required")
	}

	reason := cleanText(in.Reason)
	if reason == "" {
		return nil, errors.Validation("Reason required")
	}

	report := &model.Report{
		ReporterID: p.UserID,
		Reason:     reason,
		Status:     model.ReportStatusOpen,
	}

	if hasProblem {
		if _, err := s.problems.FindByID(ctx, *in.TargetProblemID); err != nil {
			return nil, storeError(err, "Problem not found", "load problem")
		}
		report.TargetProblemID = in.TargetProblemID
	} else {
		if _, err := s.messages.FindByID(ctx, *in.TargetMessageID); err != nil {
			return nil, storeError(err, "Message not found", "load message")
		}
		report.TargetMessageID = in.TargetMessageID
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, errors.Unexpected("create report", err)
	}
	return report, nil
}
