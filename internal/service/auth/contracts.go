package auth

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

// SessionRepository интерфейс репозитория сессий врача
type SessionRepository interface {
	Create(ctx context.Context, session *domain.DoctorSession) error
	GetByToken(ctx context.Context, token string) (*domain.DoctorSession, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
