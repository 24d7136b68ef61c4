package bookings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	bookingRepo "github.com/avdnk/DocBooking/internal/infra/storage/booking"
	"github.com/avdnk/DocBooking/pkg/metrics"
	"github.com/avdnk/DocBooking/pkg/ptr"
)

// Service сервис просмотра и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	metrics     *metrics.Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// metricsCollector может быть nil, если метрики выключены.
func NewService(
	repo BookingRepository,
	notifier Notifier,
	metricsCollector *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: repo,
		notifier:    notifier,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Lookup находит бронирование по публичному коду или внутреннему ID
// и проверяет владение: email должен совпадать без учёта регистра.
// Несовпадение email и несуществующая запись возвращают одну и ту же ошибку.
func (s *Service) Lookup(ctx context.Context, ref string, email string) (*domain.Booking, error) {
	if ref == "" || email == "" {
		return nil, fmt.Errorf("%w: booking reference and email are required", ErrInvalidInput)
	}

	booking, err := s.fetch(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Lookup: booking %q not found", ref)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Lookup: repository error for %q: %v", ref, err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	if !strings.EqualFold(booking.CustomerEmail, email) {
		s.logger.Warn("Lookup: email mismatch for booking %q", ref)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

// List возвращает бронирования за период (админский просмотр, без проверки владения)
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return bookings, nil
}

// Cancel отменяет бронирование после проверки владения.
// Повторная отмена - ошибка, а не no-op: клиент должен узнать,
// что запись уже была отменена раньше.
func (s *Service) Cancel(ctx context.Context, ref string, email string) (*domain.Booking, error) {
	booking, err := s.Lookup(ctx, ref, email)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", booking.ID)
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	booking.CancelledAt = ptr.Ptr(time.Now())

	s.logger.Info("Cancel: booking id=%d code=%s cancelled", booking.ID, booking.Code)

	if s.metrics != nil {
		s.metrics.BookingsCancelledTotal.Inc()
	}

	// Побочные эффекты после фиксации отмены: письмо и удаление события календаря
	s.notifier.BookingCancelled(booking)

	return booking, nil
}

// fetch разрешает ссылку на бронирование: числовая строка - внутренний ID,
// иначе - публичный код.
func (s *Service) fetch(ctx context.Context, ref string) (*domain.Booking, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return s.bookingRepo.GetByID(ctx, id)
	}
	return s.bookingRepo.GetByCode(ctx, ref)
}
