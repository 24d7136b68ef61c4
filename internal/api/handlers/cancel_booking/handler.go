package cancel_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailRequired      = "поле email обязательно"
	msgBookingNotFound    = "запись не найдена"
	msgAlreadyCancelled   = "запись уже отменена"
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

// Handle PATCH /api/v1/bookings/{code}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["code"]

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{code}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		h.logger.Warn("PATCH /bookings/{code}/cancel - Missing email")
		handlers.RespondBadRequest(w, msgEmailRequired)
		return
	}

	booking, err := h.service.Cancel(r.Context(), ref, email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{code}/cancel - Booking not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{code}/cancel - Already cancelled: ref=%s", ref)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /bookings/{code}/cancel - Failed to cancel booking: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{code}/cancel - Booking cancelled: booking_id=%d, code=%s", booking.ID, booking.Code)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
