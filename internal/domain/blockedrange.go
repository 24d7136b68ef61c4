package domain

import (
	"time"

	"github.com/avdnk/DocBooking/pkg/types"
)

// BlockedRange represents doctor-declared unavailability for a date.
// Если StartTime и EndTime не заданы - заблокирован весь день.
// Если заданы оба - заблокирован интервал [StartTime, EndTime) этого дня.
// Обновлений нет: диапазон удаляется и создаётся заново.
type BlockedRange struct {
	ID        int64
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string

	// ID зеркального события "BLOCKED" во внешнем календаре
	CalendarEventID *string

	CreatedAt time.Time
}

// IsFullDay returns true if the range blocks the entire date
func (r *BlockedRange) IsFullDay() bool {
	return r.StartTime == nil && r.EndTime == nil
}

// IsPartial returns true if the range blocks only a sub-interval of the date
func (r *BlockedRange) IsPartial() bool {
	return r.StartTime != nil && r.EndTime != nil
}

// Covers returns true if the given slot start falls inside the blocked interval.
// Граница: blockStart <= t < blockEnd.
func (r *BlockedRange) Covers(t types.TimeString) bool {
	if r.IsFullDay() {
		return true
	}
	if !r.IsPartial() {
		return false
	}
	return !t.IsBefore(*r.StartTime) && t.IsBefore(*r.EndTime)
}
