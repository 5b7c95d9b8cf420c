package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"etats/internal/apperrors"
	"etats/internal/models"
	"etats/internal/pdf"
	"etats/internal/repositories"
)

type ReportInput struct {
	TaskID     int64
	ManagerID  string
	ReportName string
	Content    string
}

// ReportService has no update or delete: reports are append-only.
type ReportService interface {
	Create(ctx context.Context, in ReportInput) (*models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	RenderPDF(ctx context.Context, id int64, w io.Writer) error
}

type reportService struct {
	repo     repositories.ReportRepository
	renderer pdf.Renderer
}

func NewReportService(repo repositories.ReportRepository, renderer pdf.Renderer) ReportService {
	return &reportService{repo: repo, renderer: renderer}
}

func (s *reportService) Create(ctx context.Context, in ReportInput) (*models.Report, error) {
	managerID := strings.TrimSpace(in.ManagerID)
	content := strings.TrimSpace(in.Content)
	if in.TaskID <= 0 || managerID == "" || content == "" {
		return nil, apperrors.Validation("taskId, managerId, content are required")
	}
	rep := &models.Report{
		TaskID:     in.TaskID,
		ManagerID:  managerID,
		ReportName: optional(&in.ReportName),
		Content:    content,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, apperrors.Validation("Unknown task")
		}
		return nil, apperrors.Internal("Failed to create report", err)
	}
	return rep, nil
}

func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	list, err := s.repo.List(ctx, models.ReportListLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch reports", err)
	}
	return list, nil
}

func (s *reportService) RenderPDF(ctx context.Context, id int64, w io.Writer) error {
	if id <= 0 {
		return apperrors.Validation("Report id is required")
	}
	rep, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("Report not found")
	}
	if err != nil {
		return apperrors.Internal("Failed to fetch report", err)
	}
	if err := s.renderer.RenderReport(w, *rep); err != nil {
		return apperrors.Internal("Failed to render report", err)
	}
	return nil
}
