// Package schedule недельное расписание приёма (Working-Hours Policy).
// Чистая справочная структура: окно рабочего дня по дню недели,
// без какого-либо персистентного состояния.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/avdnk/DocBooking/internal/config"
	"github.com/avdnk/DocBooking/pkg/types"
)

var (
	// ErrInvalidWindow возвращается, когда окно дня задано некорректно
	ErrInvalidWindow = errors.New("schedule: invalid working window")

	// ErrUnknownTimezone возвращается при неизвестной таймзоне
	ErrUnknownTimezone = errors.New("schedule: unknown timezone")
)

// Window рабочее окно одного дня: [Start, End)
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// WeeklySchedule недельное расписание практики в локальной таймзоне
type WeeklySchedule struct {
	location *time.Location
	windows  map[time.Weekday]Window
}

// New строит расписание из конфигурации с валидацией окон
func New(cfg config.ScheduleConfig) (*WeeklySchedule, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, cfg.Timezone)
	}

	days := map[time.Weekday]config.DayWindow{
		time.Monday:    cfg.Monday,
		time.Tuesday:   cfg.Tuesday,
		time.Wednesday: cfg.Wednesday,
		time.Thursday:  cfg.Thursday,
		time.Friday:    cfg.Friday,
		time.Saturday:  cfg.Saturday,
		time.Sunday:    cfg.Sunday,
	}

	windows := make(map[time.Weekday]Window, len(days))
	for weekday, day := range days {
		if day.IsClosed() {
			continue
		}

		window, err := parseWindow(weekday, day)
		if err != nil {
			return nil, err
		}
		windows[weekday] = window
	}

	return &WeeklySchedule{location: location, windows: windows}, nil
}

// Default возвращает расписание по умолчанию:
// воскресенье 08:00-10:00, остальные дни 16:00-18:00.
func Default() *WeeklySchedule {
	windows := make(map[time.Weekday]Window, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d == time.Sunday {
			windows[d] = Window{Start: "08:00", End: "10:00"}
			continue
		}
		windows[d] = Window{Start: "16:00", End: "18:00"}
	}
	return &WeeklySchedule{location: time.Local, windows: windows}
}

// WindowFor возвращает рабочее окно для указанной даты.
// Второе значение false означает выходной день.
func (s *WeeklySchedule) WindowFor(date time.Time) (Window, bool) {
	window, ok := s.windows[date.Weekday()]
	return window, ok
}

// Location возвращает таймзону практики
func (s *WeeklySchedule) Location() *time.Location {
	return s.location
}

func parseWindow(weekday time.Weekday, day config.DayWindow) (Window, error) {
	start, err := types.NewTimeStringFromString(day.Start)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %s start: %v", ErrInvalidWindow, weekday, err)
	}

	end, err := types.NewTimeStringFromString(day.End)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %s end: %v", ErrInvalidWindow, weekday, err)
	}

	if !start.IsBefore(end) {
		return Window{}, fmt.Errorf("%w: %s: start %s must be before end %s", ErrInvalidWindow, weekday, start, end)
	}

	return Window{Start: start, End: end}, nil
}
