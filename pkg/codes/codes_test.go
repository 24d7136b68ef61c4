package codes

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingCode(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	code, err := GenerateBookingCode("APT", date)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^APT-20260901-[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{4}$`), code)
}

func TestGenerateBookingCode_SuffixVaries(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateBookingCode("APT", date)
		require.NoError(t, err)
		seen[code] = true
	}

	// 50 кодов из алфавита 31^4 практически не должны совпадать все разом
	assert.Greater(t, len(seen), 1)
}

func TestGenerateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken()
	require.NoError(t, err)

	assert.Len(t, token, TokenByteLength*2)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), token)
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(24)
	require.NoError(t, err)
	assert.Len(t, token, 48)

	other, err := GenerateSecureToken(24)
	require.NoError(t, err)
	assert.False(t, strings.EqualFold(token, other))
}
