// Package notifier побочные эффекты бронирований: почта и внешний календарь.
// Все операции запускаются после коммита основной транзакции как независимые
// задачи. Ошибка любой из них логируется и проглатывается - запись в БД
// остаётся источником истины, календарь и почта только best-effort зеркала.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/integrations/googlecalendar"
	"github.com/avdnk/DocBooking/internal/integrations/mailer"
	"github.com/avdnk/DocBooking/pkg/metrics"
)

const sideEffectTimeout = 30 * time.Second

// Service диспетчер побочных эффектов
type Service struct {
	mailer      Mailer
	calendar    Calendar
	bookingRepo BookingEventStore
	blockRepo   BlockEventStore
	location    *time.Location
	metrics     *metrics.Metrics
	logger      Logger

	wg sync.WaitGroup
}

// NewService создает новый диспетчер побочных эффектов.
// metricsCollector может быть nil, если метрики выключены.
func NewService(
	mail Mailer,
	cal Calendar,
	bookingRepo BookingEventStore,
	blockRepo BlockEventStore,
	location *time.Location,
	metricsCollector *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		mailer:      mail,
		calendar:    cal,
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		location:    location,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Wait дожидается завершения всех запущенных задач.
// Используется при graceful shutdown и в тестах.
func (s *Service) Wait() {
	s.wg.Wait()
}

// BookingCreated отправляет подтверждение клиенту, уведомляет врача
// и создаёт зеркальное событие в календаре
func (s *Service) BookingCreated(booking *domain.Booking) {
	s.dispatch("email:booking_created", func(ctx context.Context) error {
		subject, body := bookingCreatedEmail(booking)
		return s.mailer.Send(ctx, booking.CustomerEmail, subject, body)
	})

	s.dispatch("email:doctor_notification", func(ctx context.Context) error {
		if s.mailer.DoctorEmail() == "" {
			return nil
		}
		subject, body := doctorNotificationEmail(booking)
		return s.mailer.Send(ctx, s.mailer.DoctorEmail(), subject, body)
	})

	s.dispatch("calendar:add_event", func(ctx context.Context) error {
		start, end, err := s.eventInterval(booking.BookingDate, string(booking.StartTime), booking.ServiceDuration)
		if err != nil {
			return err
		}

		eventID, err := s.calendar.AddEvent(ctx, googlecalendar.Event{
			Summary:     fmt.Sprintf("%s - %s", booking.ServiceName, booking.CustomerName),
			Description: fmt.Sprintf("Booking %s, %s, %s", booking.Code, booking.CustomerEmail, booking.CustomerPhone),
			Start:       start,
			End:         end,
		})
		if err != nil {
			return err
		}

		return s.bookingRepo.SetCalendarEventID(ctx, booking.ID, &eventID)
	})
}

// BookingCancelled уведомляет клиента и удаляет зеркальное событие.
// Событие удаляется ровно один раз: после удаления ссылка на него обнуляется.
func (s *Service) BookingCancelled(booking *domain.Booking) {
	s.dispatch("email:booking_cancelled", func(ctx context.Context) error {
		subject, body := bookingCancelledEmail(booking)
		return s.mailer.Send(ctx, booking.CustomerEmail, subject, body)
	})

	if !booking.HasCalendarEvent() {
		return
	}
	eventID := *booking.CalendarEventID

	s.dispatch("calendar:remove_event", func(ctx context.Context) error {
		if err := s.calendar.RemoveEvent(ctx, eventID); err != nil {
			return err
		}
		return s.bookingRepo.SetCalendarEventID(ctx, booking.ID, nil)
	})
}

// BookingRescheduled уведомляет клиента и переносит зеркальное событие
func (s *Service) BookingRescheduled(booking *domain.Booking) {
	s.dispatch("email:booking_rescheduled", func(ctx context.Context) error {
		subject, body := bookingRescheduledEmail(booking)
		return s.mailer.Send(ctx, booking.CustomerEmail, subject, body)
	})

	if !booking.HasCalendarEvent() {
		return
	}
	eventID := *booking.CalendarEventID

	s.dispatch("calendar:update_event", func(ctx context.Context) error {
		start, end, err := s.eventInterval(booking.BookingDate, string(booking.StartTime), booking.ServiceDuration)
		if err != nil {
			return err
		}
		return s.calendar.UpdateEvent(ctx, eventID, start, end)
	})
}

// RangeBlocked создаёт в календаре маркер BLOCKED на весь день или диапазон
func (s *Service) RangeBlocked(block *domain.BlockedRange) {
	s.dispatch("calendar:block_event", func(ctx context.Context) error {
		start, end, err := s.blockInterval(block)
		if err != nil {
			return err
		}

		summary := "BLOCKED"
		if block.Reason != nil && *block.Reason != "" {
			summary = fmt.Sprintf("BLOCKED: %s", *block.Reason)
		}

		eventID, err := s.calendar.AddEvent(ctx, googlecalendar.Event{
			Summary: summary,
			Start:   start,
			End:     end,
		})
		if err != nil {
			return err
		}

		return s.blockRepo.SetCalendarEventID(ctx, block.ID, &eventID)
	})
}

// RangeUnblocked удаляет маркер BLOCKED из календаря
func (s *Service) RangeUnblocked(block *domain.BlockedRange) {
	if block.CalendarEventID == nil || *block.CalendarEventID == "" {
		return
	}
	eventID := *block.CalendarEventID

	s.dispatch("calendar:unblock_event", func(ctx context.Context) error {
		return s.calendar.RemoveEvent(ctx, eventID)
	})
}

// dispatch запускает задачу в отдельной горутине со своим контекстом.
// Контекст запроса к этому моменту уже может быть закрыт - берём Background.
func (s *Service) dispatch(kind string, fn func(ctx context.Context) error) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		err := fn(ctx)
		if err == nil {
			return
		}

		// Выключенные интеграции - не сбой
		if errors.Is(err, mailer.ErrDisabled) || errors.Is(err, googlecalendar.ErrDisabled) {
			return
		}

		s.logger.Error("notifier: side effect %s failed: %v", kind, err)
		if s.metrics != nil {
			s.metrics.SideEffectFailuresTotal.WithLabelValues(kind).Inc()
		}
	}()
}

func (s *Service) eventInterval(date time.Time, startTime string, durationMinutes int) (time.Time, time.Time, error) {
	parsed, err := time.ParseInLocation(domain.TimeFormat, startTime, s.location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("notifier: invalid start time %q: %w", startTime, err)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, s.location)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	return start, end, nil
}

func (s *Service) blockInterval(block *domain.BlockedRange) (time.Time, time.Time, error) {
	date := block.Date

	if block.IsPartial() {
		start, _, err := s.eventInterval(date, block.StartTime.String(), 0)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, _, err := s.eventInterval(date, block.EndTime.String(), 0)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	// Полный день
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	return start, start.AddDate(0, 0, 1), nil
}
