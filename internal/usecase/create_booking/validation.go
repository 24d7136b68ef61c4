package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/schedule"
	"github.com/avdnk/DocBooking/pkg/types"
)

// Достаточно для отсечения мусора; строгую валидацию делает почтовый сервер
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: customerEmail has invalid format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.Comments != nil && len(*req.Comments) > domain.MaxCommentsLength {
		return fmt.Errorf("%w: comments exceed %d characters", ErrInvalidInput, domain.MaxCommentsLength)
	}

	return nil
}

// validateDateNotInPast проверяет, что дата бронирования не в прошлом.
// Сравниваются только даты, без времени суток.
func validateDateNotInPast(bookingDate time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	return nil
}

// validateSlotFitsWindow проверяет, что время лежит на 30-минутной сетке от
// начала рабочего окна и услуга целиком помещается в окно
func validateSlotFitsWindow(startTime types.TimeString, serviceDurationMinutes int, window schedule.Window) error {
	if startTime.IsBefore(window.Start) {
		return fmt.Errorf("%w: startTime is before working hours", ErrInvalidTimeSlot)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	windowMinutes, err := window.Start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if (startMinutes-windowMinutes)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: startTime is not aligned to the slot grid", ErrInvalidTimeSlot)
	}

	slotEnd, err := startTime.AddMinutes(serviceDurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: service does not fit into the day", ErrInvalidTimeSlot)
	}
	if slotEnd.IsAfter(window.End) {
		return fmt.Errorf("%w: service does not fit into working hours", ErrInvalidTimeSlot)
	}

	return nil
}

// slotConflicts проверяет пересечение слота с подтверждёнными бронированиями
// и частичными блокировками
func slotConflicts(
	startTime types.TimeString,
	serviceDurationMinutes int,
	bookings []*domain.Booking,
	blocks []*domain.BlockedRange,
) (bool, error) {
	slotEnd, err := startTime.AddMinutes(serviceDurationMinutes)
	if err != nil {
		return false, err
	}

	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}
		bookingEnd, err := booking.StartTime.AddMinutes(booking.ServiceDuration)
		if err != nil {
			continue
		}
		if booking.StartTime.IsBefore(slotEnd) && bookingEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	for _, block := range blocks {
		if block.IsPartial() && block.Covers(startTime) {
			return true, nil
		}
	}

	return false, nil
}
