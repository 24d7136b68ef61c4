package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDayClosed возвращается, когда в указанный день приёма нет
	ErrDayClosed = errors.New("create_booking: no working hours on this date")

	// ErrDayBlocked возвращается, когда день полностью заблокирован
	ErrDayBlocked = errors.New("create_booking: this date is blocked")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или заблокирован
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	// или услуга не помещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
