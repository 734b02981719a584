package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
)

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type userIDKey struct{}

// Auth middleware для защищённых маршрутов.
// Идентификация выполняется на API gateway, сюда приходит
// уже проверенный ID пользователя в заголовке X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
