package googlecalendar

import "errors"

var (
	// ErrDisabled возвращается, когда синхронизация с календарём выключена
	ErrDisabled = errors.New("googlecalendar: calendar sync is disabled")

	// ErrInternal возвращается при ошибках Google Calendar API
	ErrInternal = errors.New("googlecalendar: calendar API error")
)
