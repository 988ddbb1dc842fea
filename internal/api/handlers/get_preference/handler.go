package get_preference

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	preferencesService "github.com/squadsync/SquadSync-SessionService/internal/service/preferences"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgMissingGameID = "не указан ID игры"
	msgNotFound      = "предпочтение не найдено"
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

// Handle GET /api/v1/preferences/{gameId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	gameID := mux.Vars(r)["gameId"]
	if gameID == "" {
		handlers.RespondBadRequest(w, msgMissingGameID)
		return
	}

	pref, err := h.service.Get(r.Context(), uc.UserID, gameID)
	if err != nil {
		if errors.Is(err, preferencesService.ErrPreferenceNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /preferences/{gameId} - Failed: user_id=%s, game_id=%s, error=%v",
			uc.UserID, gameID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /preferences/{gameId} - Preference served: user_id=%s, game_id=%s", uc.UserID, gameID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(pref))
}
