// Package blocks управление диапазонами недоступности врача.
package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	blockRepo "github.com/avdnk/DocBooking/internal/infra/storage/blockedrange"
	"github.com/avdnk/DocBooking/pkg/types"
)

// CreateRequest запрос на создание заблокированного диапазона.
// StartTime и EndTime указываются либо оба (частичная блокировка),
// либо ни одного (блокировка всего дня).
type CreateRequest struct {
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
}

// Service сервис управления заблокированными диапазонами
type Service struct {
	blockRepo   BlockRepository
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlockRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:   blockRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create создает заблокированный диапазон.
// Пересечение с существующими блокировками допускается без слияния.
// Пересечение с подтверждёнными бронированиями тоже допускается:
// записи не отменяются автоматически, но в лог пишется предупреждение,
// чтобы врач мог связаться с клиентами.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.BlockedRange, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	block := &domain.BlockedRange{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked range id=%d date=%s created",
		created.ID, created.Date.Format(domain.DateFormat))

	s.warnAboutOverlappingBookings(ctx, created)

	// Зеркалим маркер BLOCKED в календаре
	s.notifier.RangeBlocked(created)

	return created, nil
}

// List возвращает заблокированные диапазоны начиная с указанной даты
func (s *Service) List(ctx context.Context, from time.Time) ([]*domain.BlockedRange, error) {
	ranges, err := s.blockRepo.ListFrom(ctx, from)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return ranges, nil
}

// Delete удаляет заблокированный диапазон и его маркер в календаре
func (s *Service) Delete(ctx context.Context, id int64) error {
	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: blocked range id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked range id=%d deleted", id)

	s.notifier.RangeUnblocked(block)

	return nil
}

func (s *Service) warnAboutOverlappingBookings(ctx context.Context, block *domain.BlockedRange) {
	bookings, err := s.bookingRepo.GetByDate(ctx, block.Date, true)
	if err != nil {
		s.logger.Error("Create: failed to check overlapping bookings for date=%s: %v",
			block.Date.Format(domain.DateFormat), err)
		return
	}

	for _, booking := range bookings {
		if block.Covers(booking.StartTime) {
			s.logger.Warn("Create: blocked range id=%d overlaps confirmed booking code=%s at %s %s - booking is NOT cancelled",
				block.ID, booking.Code, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
		}
	}
}

func validateCreateRequest(req *CreateRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Время указывается парой: только начало или только конец - ошибка
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidRange)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidRange, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidRange, err)
		}
		if !req.StartTime.IsBefore(*req.EndTime) {
			return fmt.Errorf("%w: startTime %s must be strictly before endTime %s",
				ErrInvalidRange, *req.StartTime, *req.EndTime)
		}
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return nil
}
