package export_bookings

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

type ReportRenderer interface {
	RenderBookingsReport(bookings []*domain.Booking, from, to time.Time) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
