package reschedule_booking

import (
	"time"

	"github.com/avdnk/DocBooking/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	Ref          string // Код бронирования или его числовой ID
	Email        string // Email владельца для проверки доступа
	NewDate      time.Time
	NewStartTime types.TimeString
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID              int64
	Code            string
	ServiceID       int64
	ServiceName     string
	ServiceDuration int
	BookingDate     time.Time
	StartTime       types.TimeString
	Status          string
}
