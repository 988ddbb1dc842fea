package reject_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	rejectSession "github.com/squadsync/SquadSync-SessionService/internal/usecase/reject_session"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgMissingSessionID = "не указан ID сессии"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidReason    = "некорректная причина отказа"
	msgReasonNotAllowed = "причина недопустима для этой сессии"
	msgNotFound         = "сессия не найдена"
	msgNotParticipant   = "пользователь не приглашён в сессию"
	msgAlreadyRejected  = "сессия уже отклонена"
	msgCancelled        = "сессия отменена"
)

type Handler struct {
	usecase RejectSessionUseCase
	logger  Logger
}

func NewHandler(usecase RejectSessionUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/reject
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

	var req RejectSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.usecase.Execute(r.Context(), uc.UserID, sessionID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, rejectSession.ErrInvalidReason):
			handlers.RespondBadRequest(w, msgInvalidReason)

		case errors.Is(err, rejectSession.ErrReasonNotAllowed):
			h.logger.Warn("POST /sessions/{id}/reject - Reason not allowed: session_id=%s, user_id=%s, reason=%s",
				sessionID, uc.UserID, req.Reason)
			handlers.RespondBadRequest(w, msgReasonNotAllowed)

		case errors.Is(err, rejectSession.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/reject - Session not found: session_id=%s, user_id=%s",
				sessionID, uc.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rejectSession.ErrNotParticipant):
			h.logger.Warn("POST /sessions/{id}/reject - Not a participant: session_id=%s, user_id=%s",
				sessionID, uc.UserID)
			handlers.RespondForbidden(w, msgNotParticipant)

		case errors.Is(err, rejectSession.ErrAlreadyRejected):
			handlers.RespondConflict(w, msgAlreadyRejected)

		case errors.Is(err, rejectSession.ErrSessionCancelled):
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, rejectSession.ErrService):
			h.logger.Error("POST /sessions/{id}/reject - Service error: session_id=%s, user_id=%s, error=%v",
				sessionID, uc.UserID, err)
			handlers.RespondBadGateway(w, err.Error())

		default:
			h.logger.Error("POST /sessions/{id}/reject - Failed: session_id=%s, user_id=%s, error=%v",
				sessionID, uc.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/reject - Session rejected: session_id=%s, user_id=%s, reason=%s",
		sessionID, uc.UserID, req.Reason)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
