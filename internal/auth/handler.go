package auth

import (
	"encoding/json"
	"net/http"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/transport"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

type ServiceAPI interface {
	Register(dto *RegisterDTO) (*User, error)
	Authenticate(dto LoginDTO) (*LoginResult, error)
	ResolveIdentity(tokenString string) (*internal.Identity, error)
	GetProfile(userID int64) (*User, error)
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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Register(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
		"message":   "registration received, awaiting administrator approval",
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := internal.IdentityFromContext(r.Context())
	if !ok || ident == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.Service.GetProfile(ident.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, user)
}

// AuthMiddleware resolves the bearer credential into a caller identity.
// Missing, malformed, invalid and stale tokens all produce the same
// response body.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ident, err := h.Service.ResolveIdentity(token)
		if err != nil {
			h.Logger.Warn("identity resolution failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := internal.ContextWithIdentity(r.Context(), ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route on the explicit role allow-list.
func (h *Handler) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := internal.IdentityFromContext(r.Context())
			if !ok || ident == nil {
				h.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !RoleAllowed(ident.Role, roles...) {
				h.Logger.Warn("access denied: insufficient role",
					"user_id", ident.ID,
					"role", ident.Role,
					"required_roles", roles)
				h.HandleServiceError(w, ForbiddenForRole(ident.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
