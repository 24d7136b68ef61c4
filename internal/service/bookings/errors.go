package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или email не совпадает с указанным при бронировании.
	// Случаи намеренно неразличимы, чтобы нельзя было перебором
	// выяснить существование чужого бронирования.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyCancelled возвращается при попытке отменить уже отменённое бронирование
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
