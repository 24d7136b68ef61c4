package domain

import (
	"time"

	"github.com/avdnk/DocBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer appointment
type Booking struct {
	ID        int64
	Code      string // Публичный код вида APT-20250314-K7N2
	ServiceID int64

	BookingDate time.Time // Дата приёма (только дата, без времени)
	StartTime   types.TimeString

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Comments      *string

	Status      BookingStatus
	AccessToken string // Секретный токен для самообслуживания без аккаунта

	// ID зеркального события во внешнем календаре (если синхронизация удалась)
	CalendarEventID *string

	// Denormalized data for history
	ServiceName     string
	ServiceDuration int

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking is still active
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// HasCalendarEvent returns true if the booking is mirrored on the external calendar
func (b *Booking) HasCalendarEvent() bool {
	return b.CalendarEventID != nil && *b.CalendarEventID != ""
}

// BookingsFilter фильтр для получения бронирований за период
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
