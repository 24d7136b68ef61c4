package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/internal/config"
)

func TestNew(t *testing.T) {
	cfg := config.ScheduleConfig{
		Timezone: "UTC",
		Monday:   config.DayWindow{Start: "16:00", End: "18:00"},
		Sunday:   config.DayWindow{Start: "08:00", End: "10:00"},
	}

	s, err := New(cfg)
	require.NoError(t, err)

	// 2026-08-31 - понедельник
	window, ok := s.WindowFor(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, Window{Start: "16:00", End: "18:00"}, window)

	// 2026-08-30 - воскресенье
	window, ok = s.WindowFor(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, Window{Start: "08:00", End: "10:00"}, window)

	// Вторник не настроен - выходной
	_, ok = s.WindowFor(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestNew_InvalidWindow(t *testing.T) {
	tests := []struct {
		name string
		day  config.DayWindow
		err  error
	}{
		{name: "start after end", day: config.DayWindow{Start: "18:00", End: "16:00"}, err: ErrInvalidWindow},
		{name: "start equals end", day: config.DayWindow{Start: "16:00", End: "16:00"}, err: ErrInvalidWindow},
		{name: "bad start format", day: config.DayWindow{Start: "4pm", End: "18:00"}, err: ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(config.ScheduleConfig{Timezone: "UTC", Friday: tt.day})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNew_UnknownTimezone(t *testing.T) {
	_, err := New(config.ScheduleConfig{Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestDefault(t *testing.T) {
	s := Default()

	window, ok := s.WindowFor(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) // воскресенье
	require.True(t, ok)
	assert.Equal(t, Window{Start: "08:00", End: "10:00"}, window)

	window, ok = s.WindowFor(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)) // среда
	require.True(t, ok)
	assert.Equal(t, Window{Start: "16:00", End: "18:00"}, window)
}
