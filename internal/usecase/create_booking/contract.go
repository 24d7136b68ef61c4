package create_booking

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/schedule"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDate получает бронирования на дату; внутри транзакции блокирует строки FOR UPDATE
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

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс диспетчера побочных эффектов (письма, календарь)
type Notifier interface {
	BookingCreated(booking *domain.Booking)
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
