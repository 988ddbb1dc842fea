package init_context

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgInitFailed   = "не удалось загрузить данные пользователя"
)

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

// Handle POST /api/v1/context
// Вход в приложение: сторы сессий и доступности загружаются вместе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.manager.Initialize(r.Context(), uc.UserID); err != nil {
		h.logger.Error("POST /context - Initialize failed: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadGateway(w, msgInitFailed)
		return
	}

	h.logger.Info("POST /context - Context initialized: user_id=%s", uc.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
