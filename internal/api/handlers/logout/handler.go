package logout

import (
	"net/http"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/api/middleware"
)

type Handler struct {
	auth   AuthService
	logger Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		auth:   authService,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	if err := h.auth.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /admin/logout - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/logout - Session terminated")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
