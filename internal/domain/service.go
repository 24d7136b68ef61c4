package domain

import "time"

// Service represents a bookable service (reference data, seeded once)
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Description     string
	Price           string // Отображаемая цена, не используется в расчётах

	CreatedAt time.Time
}
