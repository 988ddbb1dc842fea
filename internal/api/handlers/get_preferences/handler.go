package get_preferences

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
)

type Handler struct {
	service PreferenceService
	logger  Logger
}

func NewHandler(service PreferenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), uc.UserID)
	if err != nil {
		h.logger.Error("GET /preferences - Failed to list preferences: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /preferences - Preferences served: user_id=%s, count=%d", uc.UserID, len(result.Preferences))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
