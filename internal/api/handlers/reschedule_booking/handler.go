package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	rescheduleBooking "github.com/avdnk/DocBooking/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBookingNotFound    = "запись не найдена"
	msgBookingCancelled   = "запись отменена и не может быть перенесена"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgDayClosed          = "в выбранную дату приёма нет"
	msgDayBlocked         = "выбранная дата недоступна для записи"
	msgInvalidBookingDate = "некорректная дата записи"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{code}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["code"]

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{code}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ref)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{code}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Booking not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrBookingCancelled):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Booking cancelled: ref=%s", ref)
			handlers.RespondError(w, http.StatusConflict, msgBookingCancelled)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Slot not available: ref=%s, date=%s, time=%s",
				ref, req.NewDate, req.NewStartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrDayClosed):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Day closed: date=%s", req.NewDate)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, rescheduleBooking.ErrDayBlocked):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Day blocked: date=%s", req.NewDate)
			handlers.RespondError(w, http.StatusConflict, msgDayBlocked)

		case errors.Is(err, rescheduleBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Invalid date: date=%s", req.NewDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, rescheduleBooking.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Invalid time slot: date=%s, time=%s",
				req.NewDate, req.NewStartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{code}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{code}/reschedule - Failed to reschedule: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{code}/reschedule - Booking rescheduled: booking_id=%d, date=%s, time=%s",
		result.ID, req.NewDate, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
