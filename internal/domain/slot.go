package domain

import "github.com/avdnk/DocBooking/pkg/types"

// Slot represents a bookable time slot within a working window
type Slot struct {
	StartTime types.TimeString
	Available bool
}
