// Package googlecalendar зеркалирование бронирований во внешний Google Calendar.
// Клиент создаётся один раз в composition root и передаётся явно -
// никакого глобального состояния. Все операции best-effort:
// ошибка синхронизации никогда не откатывает бронирование.
package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/avdnk/DocBooking/internal/config"
)

const cancelledPrefix = "CANCELLED: "

// Client клиент Google Calendar API
type Client struct {
	enabled    bool
	svc        *calendar.Service
	calendarID string
}

// NewClient создает клиент по сервисному аккаунту из конфигурации
func NewClient(ctx context.Context, cfg config.CalendarConfig) (*Client, error) {
	if !cfg.Enabled {
		return NewDisabled(), nil
	}

	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		enabled:    true,
		svc:        svc,
		calendarID: cfg.CalendarID,
	}, nil
}

// NewDisabled создает выключенный клиент: все операции возвращают ErrDisabled
func NewDisabled() *Client {
	return &Client{enabled: false}
}

// AddEvent создает событие и возвращает его ID
func (c *Client) AddEvent(ctx context.Context, event Event) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	created, err := c.svc.Events.Insert(c.calendarID, toAPIEvent(event)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: insert event: %v", ErrInternal, err)
	}

	return created.Id, nil
}

// UpdateEvent переносит существующее событие на новый интервал
func (c *Client) UpdateEvent(ctx context.Context, eventID string, start, end time.Time) error {
	if !c.enabled {
		return ErrDisabled
	}

	event, err := c.svc.Events.Get(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: get event %s: %v", ErrInternal, eventID, err)
	}

	event.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)}
	event.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)}

	if _, err := c.svc.Events.Update(c.calendarID, eventID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: update event %s: %v", ErrInternal, eventID, err)
	}

	return nil
}

// RemoveEvent удаляет событие из календаря
func (c *Client) RemoveEvent(ctx context.Context, eventID string) error {
	if !c.enabled {
		return ErrDisabled
	}

	if err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: delete event %s: %v", ErrInternal, eventID, err)
	}

	return nil
}

// ArchiveEvent помечает событие отменённым, не удаляя его из календаря
func (c *Client) ArchiveEvent(ctx context.Context, eventID string) error {
	if !c.enabled {
		return ErrDisabled
	}

	event, err := c.svc.Events.Get(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: get event %s: %v", ErrInternal, eventID, err)
	}

	if len(event.Summary) < len(cancelledPrefix) || event.Summary[:len(cancelledPrefix)] != cancelledPrefix {
		event.Summary = cancelledPrefix + event.Summary
	}

	if _, err := c.svc.Events.Update(c.calendarID, eventID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: archive event %s: %v", ErrInternal, eventID, err)
	}

	return nil
}

func toAPIEvent(event Event) *calendar.Event {
	return &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       &calendar.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
	}
}
