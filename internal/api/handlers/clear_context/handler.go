package clear_context

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const msgUnauthorized = "пользователь не аутентифицирован"

type Handler struct {
	manager ContextManager
	logger  Logger
}

func NewHandler(manager ContextManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/context
// Выход из приложения: кэши пользователя выбрасываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.manager.Clear(uc.UserID)

	h.logger.Info("DELETE /context - Context cleared: user_id=%s", uc.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
