package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	bookingRepo "github.com/avdnk/DocBooking/internal/infra/storage/booking"
	bookingsService "github.com/avdnk/DocBooking/internal/service/bookings"
	"github.com/avdnk/DocBooking/pkg/metrics"
)

// UseCase use case для переноса бронирования на другой слот
type UseCase struct {
	finder       BookingFinder
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	schedule     Schedule
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	finder BookingFinder,
	bookings BookingRepository,
	blocks BlockRepository,
	sched Schedule,
	txManager TransactionManager,
	notifier Notifier,
	metricsCollector *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		finder:       finder,
		bookingRepo:  bookings,
		blockRepo:    blocks,
		schedule:     sched,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		metrics:      metricsCollector,
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Проверки нового слота и обновление выполняются в сериализуемой транзакции;
// при неудаче бронирование остаётся на старом слоте.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: ref=%s, newDate=%s, newTime=%s",
		req.Ref, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.NewDate, now); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Ищем бронирование с проверкой владельца
	booking, err := uc.finder.Lookup(ctx, req.Ref, req.Email)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking %s not found", req.Ref)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to lookup booking %s: %v", req.Ref, err)
		return nil, fmt.Errorf("%w: failed to lookup booking: %v", ErrInternal, err)
	}

	// 4. Отменённое бронирование переносить нельзя
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d is cancelled", booking.ID)
		return nil, ErrBookingCancelled
	}

	// 5. Проверяем новый слот и переносим в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокировки на новую дату
		blocks, err := uc.blockRepo.ListByDate(txCtx, req.NewDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to list blocked ranges: %v", err)
			return fmt.Errorf("%w: failed to list blocked ranges: %v", ErrInternal, err)
		}

		for _, block := range blocks {
			if block.IsFullDay() {
				uc.logger.Warn("RescheduleBooking: date %s is fully blocked",
					req.NewDate.Format(domain.DateFormat))
				return ErrDayBlocked
			}
		}

		// 5.2. Рабочее окно на новый день
		window, ok := uc.schedule.WindowFor(req.NewDate)
		if !ok {
			uc.logger.Warn("RescheduleBooking: no working hours on %s",
				req.NewDate.Format(domain.DateFormat))
			return ErrDayClosed
		}

		// 5.3. Новое время лежит на сетке и услуга помещается в окно
		if window.Start.IsAfter(req.NewStartTime) {
			return fmt.Errorf("%w: startTime is before working hours", ErrInvalidTimeSlot)
		}
		startMinutes, err := req.NewStartTime.Minutes()
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
		slotEnd, err := req.NewStartTime.AddMinutes(booking.ServiceDuration)
		if err != nil || slotEnd.IsAfter(window.End) {
			return fmt.Errorf("%w: service does not fit into working hours", ErrInvalidTimeSlot)
		}

		// 5.4. Подтверждённые бронирования на новую дату с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByDate(txCtx, req.NewDate, true)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.5. Проверяем пересечения, исключая само переносимое бронирование
		for _, other := range existing {
			if other.ID == booking.ID || !other.IsConfirmed() {
				continue
			}
			otherEnd, err := other.StartTime.AddMinutes(other.ServiceDuration)
			if err != nil {
				continue
			}
			if other.StartTime.IsBefore(slotEnd) && otherEnd.IsAfter(req.NewStartTime) {
				uc.logger.Warn("RescheduleBooking: slot %s %s is not available",
					req.NewDate.Format(domain.DateFormat), req.NewStartTime)
				return ErrSlotNotAvailable
			}
		}
		for _, block := range blocks {
			if block.IsPartial() && block.Covers(req.NewStartTime) {
				uc.logger.Warn("RescheduleBooking: slot %s %s falls into a blocked range",
					req.NewDate.Format(domain.DateFormat), req.NewStartTime)
				return ErrSlotNotAvailable
			}
		}

		// 5.6. Обновляем дату и время
		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, req.NewDate, req.NewStartTime); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Частичный индекс по подтверждённым слотам - страховка от гонки
				return ErrSlotNotAvailable
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) && uc.metrics != nil {
			uc.metrics.BookingConflictsTotal.Inc()
		}
		return nil, err
	}

	booking.BookingDate = req.NewDate
	booking.StartTime = req.NewStartTime

	uc.logger.Info("RescheduleBooking: successfully moved booking id=%d to %s %s",
		booking.ID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	if uc.metrics != nil {
		uc.metrics.BookingsRescheduledTotal.Inc()
	}

	// 6. Побочные эффекты (письмо, календарь) после коммита транзакции
	uc.notifier.BookingRescheduled(booking)

	return &Response{
		ID:              booking.ID,
		Code:            booking.Code,
		ServiceID:       booking.ServiceID,
		ServiceName:     booking.ServiceName,
		ServiceDuration: booking.ServiceDuration,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime,
		Status:          string(booking.Status),
	}, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if strings.TrimSpace(req.Ref) == "" {
		return fmt.Errorf("%w: booking reference is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}
	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateDateNotInPast проверяет, что новая дата не в прошлом.
// Сравниваются только даты, без времени суток.
func validateDateNotInPast(date time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	return nil
}
