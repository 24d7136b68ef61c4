package reschedule_booking

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/schedule"
	"github.com/avdnk/DocBooking/pkg/types"
)

// BookingFinder интерфейс поиска бронирования с проверкой владельца
type BookingFinder interface {
	Lookup(ctx context.Context, ref string, email string) (*domain.Booking, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает бронирования на дату; внутри транзакции блокирует строки FOR UPDATE
	GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Booking, error)
	UpdateSchedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error
}

// BlockRepository интерфейс репозитория заблокированных диапазонов
type BlockRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error)
}

// Schedule интерфейс недельного расписания приёма
type Schedule interface {
	WindowFor(date time.Time) (schedule.Window, bool)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс диспетчера побочных эффектов (письма, календарь)
type Notifier interface {
	BookingRescheduled(booking *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на основе системного времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
