package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
)

type contextKey string

const adminContextKey contextKey = "isAdmin"

const adminTokenHeader = "X-Admin-Token"

const msgInvalidAdminToken = "неверный токен администратора"

// AdminAuth проверяет заголовок X-Admin-Token общим секретом.
// Сравнение токенов выполняется за постоянное время
func AdminAuth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidAdminToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin сообщает, прошёл ли запрос проверку администратора
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(adminContextKey).(bool)
	return ok && isAdmin
}
