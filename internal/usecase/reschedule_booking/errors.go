package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или email не совпадает с email владельца
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке перенести отменённое бронирование
	ErrBookingCancelled = errors.New("reschedule_booking: booking is cancelled")

	// ErrInvalidDate возвращается при некорректной новой дате
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrDayClosed возвращается, когда в указанный день приёма нет
	ErrDayClosed = errors.New("reschedule_booking: no working hours on this date")

	// ErrDayBlocked возвращается, когда день полностью заблокирован
	ErrDayBlocked = errors.New("reschedule_booking: this date is blocked")

	// ErrSlotNotAvailable возвращается, когда новый слот занят или заблокирован
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	// или услуга не помещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
