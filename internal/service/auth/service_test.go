package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdnk/DocBooking/internal/domain"
	sessionRepo "github.com/avdnk/DocBooking/internal/infra/storage/doctorsession"
)

type fakeSessionRepo struct {
	sessions map[string]*domain.DoctorSession
	swept    int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.DoctorSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.DoctorSession) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.DoctorSession, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) error {
	f.swept++
	for token, s := range f.sessions {
		if s.IsExpired(now) {
			delete(f.sessions, token)
		}
	}
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testPassword = "doctor-secret"

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *fakeSessionRepo) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(repo, string(hash), 2*time.Hour, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo)

	session, err := svc.Login(context.Background(), testPassword)
	require.NoError(t, err)

	assert.Len(t, session.Token, 48)
	assert.Equal(t, testNow.Add(2*time.Hour), session.ExpiresAt)
	assert.Contains(t, repo.sessions, session.Token)
}

func TestLogin_InvalidPassword(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo)

	_, err := svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Empty(t, repo.sessions)
}

func TestValidate_Success(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo)

	session, err := svc.Login(context.Background(), testPassword)
	require.NoError(t, err)

	assert.NoError(t, svc.Validate(context.Background(), session.Token))
	assert.Equal(t, 1, repo.swept)
}

func TestValidate_UnknownToken(t *testing.T) {
	svc := newTestService(t, newFakeSessionRepo())

	assert.ErrorIs(t, svc.Validate(context.Background(), "nope"), ErrInvalidToken)
	assert.ErrorIs(t, svc.Validate(context.Background(), ""), ErrInvalidToken)
}

func TestValidate_ExpiredSessionSweptAway(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo)

	repo.sessions["stale"] = &domain.DoctorSession{
		Token:     "stale",
		ExpiresAt: testNow.Add(-time.Minute),
		CreatedAt: testNow.Add(-3 * time.Hour),
	}

	assert.ErrorIs(t, svc.Validate(context.Background(), "stale"), ErrInvalidToken)
	// Ленивая чистка удалила просроченную сессию
	assert.NotContains(t, repo.sessions, "stale")
}

func TestLogout(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo)

	session, err := svc.Login(context.Background(), testPassword)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))
	assert.NotContains(t, repo.sessions, session.Token)

	// Повторный logout и пустой токен - no-op
	assert.NoError(t, svc.Logout(context.Background(), session.Token))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
