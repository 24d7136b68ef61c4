package create_booking

import (
	"time"

	"github.com/avdnk/DocBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     int64
	Date          time.Time
	StartTime     types.TimeString
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Comments      *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	Code            string
	ServiceID       int64
	ServiceName     string
	ServiceDuration int
	BookingDate     time.Time
	StartTime       types.TimeString
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Comments        *string
	Status          string
	AccessToken     string
	CreatedAt       time.Time
}
