package get_available_slots

import (
	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/schedule"
	"github.com/avdnk/DocBooking/pkg/types"
)

// generateSlotStarts генерирует стартовые времена слотов внутри рабочего окна.
// Сетка фиксированная: шаг 30 минут от начала окна, независимо от длительности
// услуги. Слот попадает в результат, только если целиком помещается в окно:
// конец слота может совпадать с концом окна, но не выходить за него.
// Хвостовой неполный слот не предлагается.
func generateSlotStarts(window schedule.Window, serviceDurationMinutes int) []types.TimeString {
	starts := make([]types.TimeString, 0)
	current := window.Start

	for current.IsBefore(window.End) {
		slotEnd, err := current.AddMinutes(serviceDurationMinutes)
		if err != nil {
			// Конец слота вышел за сутки - дальше слотов не будет
			break
		}
		if slotEnd.IsAfter(window.End) {
			break
		}

		starts = append(starts, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return starts
}

// computeAvailability вычисляет доступность каждого слота.
// Слот занят, если с ним пересекается подтверждённое бронирование
// или его начало попадает в частично заблокированный диапазон.
// Порядок слотов сохраняется (по возрастанию времени).
func computeAvailability(
	starts []types.TimeString,
	serviceDurationMinutes int,
	bookings []*domain.Booking,
	partialBlocks []*domain.BlockedRange,
) []Slot {
	slots := make([]Slot, len(starts))

	for i, start := range starts {
		taken := hasOverlappingBooking(start, serviceDurationMinutes, bookings)
		blocked := isBlocked(start, partialBlocks)

		slots[i] = Slot{
			StartTime: start,
			Available: !taken && !blocked,
		}
	}

	return slots
}

// hasOverlappingBooking проверяет, пересекается ли слот с подтверждённым бронированием.
// Интервалы пересекаются только при строгом наложении: бронирование,
// заканчивающееся ровно в начале слота, не мешает ему.
func hasOverlappingBooking(slotStart types.TimeString, slotDuration int, bookings []*domain.Booking) bool {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return false
	}

	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.ServiceDuration)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return true
		}
	}

	return false
}

// isBlocked проверяет, попадает ли начало слота в частично заблокированный
// диапазон: blockStart <= t < blockEnd.
func isBlocked(slotStart types.TimeString, partialBlocks []*domain.BlockedRange) bool {
	for _, block := range partialBlocks {
		if block.IsPartial() && block.Covers(slotStart) {
			return true
		}
	}
	return false
}

// splitBlocks разделяет диапазоны на полнодневные и частичные
func splitBlocks(blocks []*domain.BlockedRange) (hasFullDay bool, partial []*domain.BlockedRange) {
	partial = make([]*domain.BlockedRange, 0, len(blocks))
	for _, block := range blocks {
		if block.IsFullDay() {
			hasFullDay = true
			continue
		}
		if block.IsPartial() {
			partial = append(partial, block)
		}
	}
	return hasFullDay, partial
}
