package list_bookings

import (
	"net/http"

	"github.com/avdnk/DocBooking/internal/api/handlers"
)

const msgInvalidFilter = "некорректные параметры фильтра"

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

// Handle GET /api/v1/admin/bookings?from=&to=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := BookingsResponse{Bookings: make([]BookingResponse, len(list))}
	for i, booking := range list {
		resp.Bookings[i] = FromDomain(booking)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
