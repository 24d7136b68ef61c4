package get_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/service/bookings"
)

const (
	msgEmailRequired   = "параметр email обязателен"
	msgBookingNotFound = "запись не найдена"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{code}?email=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["code"]

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.logger.Warn("GET /bookings/{code} - Missing email parameter")
		handlers.RespondBadRequest(w, msgEmailRequired)
		return
	}

	booking, err := h.service.Lookup(r.Context(), ref, email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{code} - Booking not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{code} - Failed to lookup booking: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
