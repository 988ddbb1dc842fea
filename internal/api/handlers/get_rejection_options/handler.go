package get_rejection_options

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	resolveRejection "github.com/squadsync/SquadSync-SessionService/internal/usecase/resolve_rejection"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgMissingSessionID = "не указан ID сессии"
	msgNotFound         = "сессия не найдена"
)

type Handler struct {
	usecase ResolveRejectionUseCase
	logger  Logger
}

func NewHandler(usecase ResolveRejectionUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/rejection-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	resolution, err := h.usecase.Execute(r.Context(), uc.UserID, sessionID)
	if err != nil {
		if errors.Is(err, resolveRejection.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/rejection-options - Session not found: session_id=%s, user_id=%s",
				sessionID, uc.UserID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/rejection-options - Failed: session_id=%s, user_id=%s, error=%v",
			sessionID, uc.UserID, err)
		handlers.RespondBadGateway(w, err.Error())
		return
	}

	h.logger.Info("GET /sessions/{id}/rejection-options - Served: session_id=%s, user_id=%s, requiresPrompt=%t",
		sessionID, uc.UserID, resolution.RequiresPrompt)
	handlers.RespondJSON(w, http.StatusOK, FromResolution(resolution))
}
