// Package auth парольная аутентификация врача и сессионные токены.
// Аккаунтов нет: один пароль, bcrypt-хэш которого лежит в конфигурации.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avdnk/DocBooking/internal/domain"
	sessionRepo "github.com/avdnk/DocBooking/internal/infra/storage/doctorsession"
	"github.com/avdnk/DocBooking/pkg/codes"
)

const sessionTokenBytes = 24 // 48 hex-символов

// Service сервис аутентификации врача
type Service struct {
	sessionRepo  SessionRepository
	passwordHash string
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	repo SessionRepository,
	passwordHash string,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  repo,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и выдаёт новую сессию
func (s *Service) Login(ctx context.Context, password string) (*domain.DoctorSession, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: invalid password attempt")
		return nil, ErrInvalidPassword
	}

	token, err := codes.GenerateSecureToken(sessionTokenBytes)
	if err != nil {
		s.logger.Error("Login: failed to generate session token: %v", err)
		return nil, fmt.Errorf("%w: failed to generate token: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	session := &domain.DoctorSession{
		Token:     token,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Login: failed to persist session: %v", err)
		return nil, fmt.Errorf("%w: failed to persist session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: doctor session issued, expires at %s", session.ExpiresAt.Format(time.RFC3339))
	return session, nil
}

// Validate проверяет токен сессии.
// Перед проверкой лениво удаляет все просроченные сессии -
// фонового таймера нет, объёмы маленькие.
func (s *Service) Validate(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	now := s.timeProvider.Now()

	if err := s.sessionRepo.DeleteExpired(ctx, now); err != nil {
		s.logger.Error("Validate: failed to sweep expired sessions: %v", err)
		return fmt.Errorf("%w: failed to sweep expired sessions: %v", ErrInternal, err)
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Validate: unknown or expired session token")
			return ErrInvalidToken
		}
		s.logger.Error("Validate: repository error: %v", err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// Подстраховка на случай гонки между sweep-ом и чтением
	if session.IsExpired(now) {
		return ErrInvalidToken
	}

	return nil
}

// Logout удаляет сессию. Удаление неизвестного токена не считается ошибкой.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: doctor session removed")
	return nil
}
