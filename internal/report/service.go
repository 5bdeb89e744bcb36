package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/business"
	"github.com/cityhall-dev/licensing-management/internal/riskai"
)

type Repository interface {
	Create(rep *Report) error
	GetAll() ([]*Report, error)
	GetByID(id int64) (*Report, error)
	GetByBusiness(businessID int64) ([]*Report, error)
	Update(rep *Report) error
	UpdateAssessment(id int64, assessment []byte) error
	UpdatePDFPath(id int64, path string) error
}

// BusinessDirectory is the slice of the business registry the inspection
// workflow needs.
type BusinessDirectory interface {
	GetByID(id int64) (*business.Business, error)
}

// RiskSummarizer produces an automated risk read of inspection findings.
// A nil summarizer disables the step entirely.
type RiskSummarizer interface {
	AssessRisk(ctx context.Context, input riskai.Input) (*riskai.Assessment, error)
}

// PDFRenderer produces the printable inspection report document.
type PDFRenderer interface {
	Render(rep *Report) ([]byte, error)
}

// Service runs the inspection-report workflow. Creating a report always
// persists the row first; the risk assessment and the PDF render are
// enrichments that may fail without failing the request.
type Service struct {
	repo       Repository
	businesses BusinessDirectory
	summarizer RiskSummarizer
	renderer   PDFRenderer
	reportsCfg internal.ReportsConfig
	logger     *slog.Logger
}

func NewService(
	repo Repository,
	businesses BusinessDirectory,
	summarizer RiskSummarizer,
	renderer PDFRenderer,
	reportsCfg internal.ReportsConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		businesses: businesses,
		summarizer: summarizer,
		renderer:   renderer,
		reportsCfg: reportsCfg,
		logger:     logger,
	}
}

// CreateReport records an inspection visit for a business, then runs the
// two best-effort enrichment steps.
func (s *Service) CreateReport(ctx context.Context, inspectorID int64, dto *CreateReportDTO) (*Report, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	b, err := s.businesses.GetByID(dto.BusinessID)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		BusinessID:  b.ID,
		InspectorID: inspectorID,
		VisitDate:   time.Now(),
		Findings:    dto.Findings,
		Status:      dto.Status,
	}
	if err := s.repo.Create(rep); err != nil {
		return nil, err
	}

	s.logger.Info("inspection report created",
		"report_id", rep.ID,
		"business_id", b.ID,
		"inspector_id", inspectorID,
		"status", rep.Status)

	s.assessRisk(ctx, rep, b)
	s.renderPDF(rep.ID)

	return s.repo.GetByID(rep.ID)
}

// assessRisk calls the summarizer and stores the result. Failures are
// logged and swallowed; the report stands without an assessment.
func (s *Service) assessRisk(ctx context.Context, rep *Report, b *business.Business) {
	if s.summarizer == nil || rep.Findings == "" {
		return
	}

	input := riskai.Input{
		BusinessName: b.BusinessName,
		Findings:     rep.Findings,
		Status:       rep.Status,
	}
	if b.LicensingItem != nil {
		input.BusinessType = b.LicensingItem.Name
	}

	assessment, err := s.summarizer.AssessRisk(ctx, input)
	if err != nil {
		s.logger.Warn("risk assessment failed, report saved without it",
			"report_id", rep.ID, "error", err)
		return
	}

	raw, err := json.Marshal(assessment)
	if err != nil {
		s.logger.Warn("risk assessment marshal failed", "report_id", rep.ID, "error", err)
		return
	}

	if err := s.repo.UpdateAssessment(rep.ID, raw); err != nil {
		s.logger.Warn("risk assessment store failed", "report_id", rep.ID, "error", err)
	}
}

// renderPDF re-reads the report with its relations, renders the document
// and stores the public path. Failures are logged and swallowed.
func (s *Service) renderPDF(id int64) {
	if s.renderer == nil {
		return
	}

	rep, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("pdf render skipped, reload failed", "report_id", id, "error", err)
		return
	}

	doc, err := s.renderer.Render(rep)
	if err != nil {
		s.logger.Warn("pdf render failed, report saved without document",
			"report_id", id, "error", err)
		return
	}

	if err := os.MkdirAll(s.reportsCfg.StorageDir, 0o755); err != nil {
		s.logger.Warn("pdf storage dir unavailable", "report_id", id, "error", err)
		return
	}

	filename := fmt.Sprintf("report_%d_%d.pdf", id, time.Now().UnixMilli())
	if err := os.WriteFile(filepath.Join(s.reportsCfg.StorageDir, filename), doc, 0o644); err != nil {
		s.logger.Warn("pdf write failed", "report_id", id, "error", err)
		return
	}

	publicPath := s.reportsCfg.PublicPath + "/" + filename
	if err := s.repo.UpdatePDFPath(id, publicPath); err != nil {
		s.logger.Warn("pdf path store failed", "report_id", id, "error", err)
		return
	}

	s.logger.Info("inspection report rendered", "report_id", id, "pdf_path", publicPath)
}

func (s *Service) ListReports() ([]*Report, error) {
	return s.repo.GetAll()
}

func (s *Service) GetReport(id int64) (*Report, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetReportsByBusiness(businessID int64) ([]*Report, error) {
	if _, err := s.businesses.GetByID(businessID); err != nil {
		return nil, err
	}
	return s.repo.GetByBusiness(businessID)
}

// UpdateReport applies a partial edit to findings or status. Enrichments
// are not re-run; the stored assessment and document describe the visit,
// not the edit.
func (s *Service) UpdateReport(id int64, dto UpdateReportDTO) (*Report, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	rep, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Findings != nil {
		rep.Findings = *dto.Findings
	}
	if dto.Status != nil {
		rep.Status = *dto.Status
	}

	if err := s.repo.Update(rep); err != nil {
		return nil, err
	}

	s.logger.Info("inspection report updated", "report_id", rep.ID)
	return s.repo.GetByID(rep.ID)
}
