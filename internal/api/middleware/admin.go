package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
)

const msgAdminOnly = "доступно только администратору"

// AdminChecker проверка роли администратора
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireAdmin пропускает только пользователей с ролью admin. Ставится после Auth.
func RequireAdmin(checker AdminChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.Error("RequireAdmin: failed to check role of user=%s: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}
			if !isAdmin {
				logger.Warn("RequireAdmin: user=%s is not an admin, %s %s", userID, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
