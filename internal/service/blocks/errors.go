package blocks

import "errors"

var (
	// ErrBlockNotFound возвращается, когда заблокированный диапазон не найден
	ErrBlockNotFound = errors.New("blocks: blocked range not found")

	// ErrInvalidRange возвращается при некорректном диапазоне:
	// указано только одно из времён или начало не раньше конца
	ErrInvalidRange = errors.New("blocks: invalid blocked range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blocks: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocks: internal error")
)
