package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда отправка почты выключена в конфигурации
	ErrDisabled = errors.New("mailer: email sending is disabled")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send email")
)
