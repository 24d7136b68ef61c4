package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRenderBookingsReport_Empty(t *testing.T) {
	svc := NewService(nopLogger{})

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	data, err := svc.RenderBookingsReport(nil, from, to)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderBookingsReport_WithBookings(t *testing.T) {
	svc := NewService(nopLogger{})

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{
			ID:            1,
			Code:          "APT-20260901-K7N2",
			BookingDate:   from,
			StartTime:     "16:00",
			CustomerName:  "Ivan Petrov",
			CustomerEmail: "ivan@example.com",
			CustomerPhone: "+79990001122",
			Status:        domain.StatusConfirmed,
			ServiceName:   "Consultation",
		},
		{
			ID:            2,
			Code:          "APT-20260902-M3X8",
			BookingDate:   from.AddDate(0, 0, 1),
			StartTime:     "17:30",
			CustomerName:  "Anna Sidorova",
			CustomerEmail: "anna@example.com",
			CustomerPhone: "+79990003344",
			Status:        domain.StatusCancelled,
			ServiceName:   "Procedure",
		},
	}

	data, err := svc.RenderBookingsReport(bookings, from, to)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	// Отчёт с данными заметно больше пустого
	empty, err := svc.RenderBookingsReport(nil, from, to)
	require.NoError(t, err)
	assert.Greater(t, len(data), len(empty))
}
