package googlecalendar

import "time"

// Event модель события для зеркалирования в календаре
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}
