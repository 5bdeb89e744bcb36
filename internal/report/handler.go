package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/transport"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

type ServiceAPI interface {
	CreateReport(ctx context.Context, inspectorID int64, dto *CreateReportDTO) (*Report, error)
	ListReports() ([]*Report, error)
	GetReport(id int64) (*Report, error)
	GetReportsByBusiness(businessID int64) ([]*Report, error)
	UpdateReport(id int64, dto UpdateReportDTO) (*Report, error)
	ExportExcel(reports []*Report) ([]byte, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// CreateReport godoc
// @Summary Record an inspection report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportDTO true "report"
// @Success 201 {object} Report
// @Security BearerAuth
// @Router /api/reports [post]
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ident, ok := internal.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.Service.CreateReport(r.Context(), ident.ID, &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, rep)
}

// ListReports godoc
// @Summary List all inspection reports
// @Tags reports
// @Produce json
// @Success 200 {array} Report
// @Security BearerAuth
// @Router /api/reports [get]
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.ListReports()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, reports)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	rep, err := h.Service.GetReport(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) GetReportsByBusiness(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(chi.URLParam(r, "businessId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	reports, err := h.Service.GetReportsByBusiness(businessID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, reports)
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	var dto UpdateReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.Service.UpdateReport(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}

// ExportReports godoc
// @Summary Export all inspection reports as an Excel workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Router /api/reports/export [get]
func (h *Handler) ExportReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.ListReports()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	workbook, err := h.Service.ExportExcel(reports)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("inspection_reports_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
