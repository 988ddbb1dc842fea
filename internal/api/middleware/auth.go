package middleware

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	headerUserID   = "X-User-ID"
	headerUsername = "X-Username"
)

// Auth требует заголовок X-User-ID и кладет пользовательский контекст
// в context.Context запроса
// Токенная аутентификация вне зоны ответственности сервиса: идентичность
// приходит от вышестоящего шлюза
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		uc := &usercontext.UserContext{
			UserID:   userID,
			Username: r.Header.Get(headerUsername),
		}

		next.ServeHTTP(w, r.WithContext(usercontext.WithContext(r.Context(), uc)))
	})
}
