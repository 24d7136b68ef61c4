package login

import (
	"context"

	"github.com/avdnk/DocBooking/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, password string) (*domain.DoctorSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
