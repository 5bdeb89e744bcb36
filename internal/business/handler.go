package business

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/cityhall-dev/licensing-management/internal/transport"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

type ServiceAPI interface {
	CreateBusiness(dto *CreateBusinessDTO) (*Business, error)
	ListBusinesses() ([]*Business, error)
	GetBusiness(id int64) (*Business, error)
	UpdateBusiness(id int64, dto UpdateBusinessDTO) (*Business, error)
	DeleteBusiness(id int64) error
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

// CreateBusiness godoc
// @Summary Register a business
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body CreateBusinessDTO true "business"
// @Success 201 {object} Business
// @Security BearerAuth
// @Router /api/businesses [post]
func (h *Handler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var dto CreateBusinessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBusiness(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, b)
}

// ListBusinesses godoc
// @Summary List registered businesses
// @Tags businesses
// @Produce json
// @Success 200 {array} Business
// @Security BearerAuth
// @Router /api/businesses [get]
func (h *Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.Service.ListBusinesses()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, businesses)
}

func (h *Handler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	b, err := h.Service.GetBusiness(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	var dto UpdateBusinessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.UpdateBusiness(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	if err := h.Service.DeleteBusiness(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "business deleted"})
}
