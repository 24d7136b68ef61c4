package domain

import "time"

// DoctorSession represents an admin session issued after a password check.
// Просроченные сессии удаляются лениво при каждой проверке токена.
type DoctorSession struct {
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the session is no longer valid at the given moment
func (s *DoctorSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
