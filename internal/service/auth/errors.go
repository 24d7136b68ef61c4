package auth

import "errors"

var (
	// ErrInvalidPassword возвращается при неверном пароле врача
	ErrInvalidPassword = errors.New("auth: invalid password")

	// ErrInvalidToken возвращается при отсутствующем, неизвестном или просроченном токене
	ErrInvalidToken = errors.New("auth: invalid or expired session token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
