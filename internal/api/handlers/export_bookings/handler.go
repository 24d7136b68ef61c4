package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/domain"
)

const (
	msgInvalidPeriod = "некорректные параметры периода, ожидается from и to в формате YYYY-MM-DD"
)

type Handler struct {
	service  BookingsService
	renderer ReportRenderer
	logger   Logger
}

func NewHandler(service BookingsService, renderer ReportRenderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/bookings/report?from=YYYY-MM-DD&to=YYYY-MM-DD
// Отдаёт PDF отчёт по записям за период, включая отменённые.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /admin/bookings/report - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil || to.Before(from) {
		h.logger.Warn("GET /admin/bookings/report - Invalid to: %q", r.URL.Query().Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	filter := domain.BookingsFilter{
		StartDate:       &from,
		EndDate:         &to,
		IncludeInactive: true,
	}

	bookings, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/bookings/report - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	pdf, err := h.renderer.RenderBookingsReport(bookings, from, to)
	if err != nil {
		h.logger.Error("GET /admin/bookings/report - Failed to render report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("bookings_%s_%s.pdf",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	h.logger.Info("GET /admin/bookings/report - Report rendered: %d bookings, %d bytes", len(bookings), len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
