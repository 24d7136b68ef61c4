package cancel_booking

import (
	"context"

	"github.com/avdnk/DocBooking/internal/domain"
)

type BookingsService interface {
	Cancel(ctx context.Context, ref string, email string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
