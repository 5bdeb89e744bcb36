package defect

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/cityhall-dev/licensing-management/internal/transport"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

type ServiceAPI interface {
	ListDefects() ([]*Defect, error)
	GetDefect(id int64) (*Defect, error)
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

// ListDefects godoc
// @Summary List the inspection defect catalog
// @Tags defects
// @Produce json
// @Success 200 {array} Defect
// @Router /api/defects [get]
func (h *Handler) ListDefects(w http.ResponseWriter, r *http.Request) {
	defects, err := h.Service.ListDefects()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, defects)
}

func (h *Handler) GetDefect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid defect ID")
		return
	}

	d, err := h.Service.GetDefect(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, d)
}
