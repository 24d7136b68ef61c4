package login

import (
	"errors"
	"net/http"
	"time"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPassword    = "неверный пароль"
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

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			h.logger.Warn("POST /admin/login - Invalid password attempt")
			handlers.RespondUnauthorized(w, msgInvalidPassword)

		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Session created, expires at %s", session.ExpiresAt.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}
