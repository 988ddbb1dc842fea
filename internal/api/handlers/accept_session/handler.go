package accept_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	acceptSession "github.com/squadsync/SquadSync-SessionService/internal/usecase/accept_session"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgMissingSessionID = "не указан ID сессии"
	msgNotFound         = "сессия не найдена"
	msgNotParticipant   = "пользователь не приглашён в сессию"
	msgAlreadyRejected  = "сессия уже отклонена"
	msgCancelled        = "сессия отменена"
)

type Handler struct {
	usecase AcceptSessionUseCase
	logger  Logger
}

func NewHandler(usecase AcceptSessionUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/accept
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

	err := h.usecase.Execute(r.Context(), uc.UserID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, acceptSession.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/accept - Session not found: session_id=%s, user_id=%s",
				sessionID, uc.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, acceptSession.ErrNotParticipant):
			h.logger.Warn("POST /sessions/{id}/accept - Not a participant: session_id=%s, user_id=%s",
				sessionID, uc.UserID)
			handlers.RespondForbidden(w, msgNotParticipant)

		case errors.Is(err, acceptSession.ErrAlreadyRejected):
			handlers.RespondConflict(w, msgAlreadyRejected)

		case errors.Is(err, acceptSession.ErrSessionCancelled):
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, acceptSession.ErrService):
			h.logger.Error("POST /sessions/{id}/accept - Service error: session_id=%s, user_id=%s, error=%v",
				sessionID, uc.UserID, err)
			handlers.RespondBadGateway(w, err.Error())

		default:
			h.logger.Error("POST /sessions/{id}/accept - Failed: session_id=%s, user_id=%s, error=%v",
				sessionID, uc.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/accept - Session accepted: session_id=%s, user_id=%s",
		sessionID, uc.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
