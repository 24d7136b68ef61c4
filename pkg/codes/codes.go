// Package codes генерирует человекочитаемые коды бронирований и секретные токены.
package codes

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

const (
	// SuffixLength длина случайного суффикса кода бронирования
	SuffixLength = 4

	// TokenByteLength количество случайных байт для токена доступа (32 hex-символа)
	TokenByteLength = 16

	// Заглавные буквы и цифры без неоднозначных символов (0/O, 1/I/L)
	charsetUnambiguous = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	dateLayout = "20060102"
)

// GenerateBookingCode создает код бронирования вида PREFIX-YYYYMMDD-XXXX,
// где XXXX - случайный суффикс из однозначно читаемых символов.
// Уникальность гарантирует БД, при коллизии код генерируется заново.
func GenerateBookingCode(prefix string, date time.Time) (string, error) {
	suffix, err := randomString(SuffixLength)
	if err != nil {
		return "", fmt.Errorf("codes: failed to generate booking code suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, date.Format(dateLayout), suffix), nil
}

// GenerateAccessToken создает секретный токен доступа к бронированию.
// Возвращает 32-символьную hex-строку.
func GenerateAccessToken() (string, error) {
	return GenerateSecureToken(TokenByteLength)
}

// GenerateSecureToken создает криптографически стойкий токен из n случайных байт
func GenerateSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("codes: failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func randomString(length int) (string, error) {
	result := make([]byte, length)
	max := big.NewInt(int64(len(charsetUnambiguous)))

	for i := range result {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = charsetUnambiguous[idx.Int64()]
	}

	return string(result), nil
}
