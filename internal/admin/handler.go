package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/cityhall-dev/licensing-management/internal/auth"
	"github.com/cityhall-dev/licensing-management/internal/transport"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

type ServiceAPI interface {
	PendingUsers() ([]*auth.User, error)
	ApproveUser(id int64) (*auth.User, error)
	DenyUser(id int64) error
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

func (h *Handler) GetPendingUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.PendingUsers()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.Service.ApproveUser(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "user approved",
		"user": map[string]interface{}{
			"id":          user.ID,
			"full_name":   user.FullName,
			"email":       user.Email,
			"is_approved": user.IsApproved,
		},
	})
}

func (h *Handler) DenyUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.Service.DenyUser(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "user denied and removed"})
}
