package notifier

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/integrations/googlecalendar"
)

// Mailer интерфейс отправки почты
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	DoctorEmail() string
}

// Calendar интерфейс зеркального календаря
type Calendar interface {
	AddEvent(ctx context.Context, event googlecalendar.Event) (string, error)
	UpdateEvent(ctx context.Context, eventID string, start, end time.Time) error
	RemoveEvent(ctx context.Context, eventID string) error
	ArchiveEvent(ctx context.Context, eventID string) error
}

// BookingEventStore интерфейс сохранения ID событий календаря у бронирований
type BookingEventStore interface {
	SetCalendarEventID(ctx context.Context, id int64, eventID *string) error
}

// BlockEventStore интерфейс сохранения ID событий календаря у заблокированных диапазонов
type BlockEventStore interface {
	SetCalendarEventID(ctx context.Context, id int64, eventID *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
