package get_sessions

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgLoadFailed   = "не удалось загрузить сессии"
)

type Handler struct {
	store  SessionStore
	logger Logger
}

func NewHandler(store SessionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions
// Параметр ?refresh=true принудительно перечитывает набор из внешнего сервиса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		if err := h.store.Refresh(r.Context(), uc.UserID); err != nil {
			h.logger.Error("GET /sessions - Refresh failed: user_id=%s, error=%v", uc.UserID, err)
			handlers.RespondBadGateway(w, msgLoadFailed)
			return
		}
	}

	sessions, err := h.store.List(r.Context(), uc.UserID)
	if err != nil {
		h.logger.Error("GET /sessions - Failed to list sessions: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	h.logger.Info("GET /sessions - Sessions served: user_id=%s, count=%d", uc.UserID, len(sessions))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSessionList(sessions))
}
