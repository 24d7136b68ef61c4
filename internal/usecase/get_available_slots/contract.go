package get_available_slots

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/schedule"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает бронирования на дату; onlyConfirmed фильтрует отменённые
	GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория заблокированных диапазонов
type BlockRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error)
}

// ServiceRepository интерфейс справочника услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Schedule интерфейс недельного расписания приёма
type Schedule interface {
	WindowFor(date time.Time) (schedule.Window, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
