package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/avdnk/DocBooking/internal/api/handlers"
	"github.com/avdnk/DocBooking/internal/service/auth"
)

const (
	msgMissingToken = "требуется заголовок Authorization: Bearer <token>"
	msgInvalidToken = "сессия недействительна или истекла"
)

type tokenContextKey struct{}

// AuthService интерфейс проверки сессионного токена
type AuthService interface {
	Validate(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен сессии врача и кладёт его в контекст запроса
func Auth(authService AuthService, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if err := authService.Validate(r.Context(), token); err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					logger.Warn("%s %s - Invalid session token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("%s %s - Failed to validate token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext возвращает сессионный токен, положенный Auth middleware
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
