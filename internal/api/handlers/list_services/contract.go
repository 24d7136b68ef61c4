package list_services

import (
	"context"

	"github.com/avdnk/DocBooking/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
