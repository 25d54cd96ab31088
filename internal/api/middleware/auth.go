package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, выставляется API gateway
const UserIDHeader = "X-User-ID"

const msgUnauthorized = "отсутствует или некорректный X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth требует заголовок X-User-ID и кладёт ID пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserID(r)
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// OptionalAuth кладёт ID пользователя в контекст, если заголовок есть и корректен
// Используется на публичных маршрутах, где пользователь может быть анонимным
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := parseUserID(r); ok {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserID возвращает контекст с ID пользователя
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func parseUserID(r *http.Request) (int64, bool) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}
