package blocks

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

// BlockRepository интерфейс репозитория заблокированных диапазонов
type BlockRepository interface {
	Create(ctx context.Context, block *domain.BlockedRange) (*domain.BlockedRange, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedRange, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error)
	ListFrom(ctx context.Context, from time.Time) ([]*domain.BlockedRange, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// (для предупреждения о блокировке поверх подтверждённых записей)
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Booking, error)
}

// Notifier интерфейс диспетчера побочных эффектов
type Notifier interface {
	RangeBlocked(block *domain.BlockedRange)
	RangeUnblocked(block *domain.BlockedRange)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
