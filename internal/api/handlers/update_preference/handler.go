package update_preference

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
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidWeight = "вес предпочтения вне допустимого диапазона"
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

// Handle PUT /api/v1/preferences/{gameId}
// Двухфазное редактирование: из запроса собирается черновик,
// ответ содержит уже зафиксированное значение
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

	var req UpdatePreferenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences/{gameId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	draft := h.service.NewDraft(uc.UserID, gameID, req.Weight)

	committed, err := h.service.Commit(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, preferencesService.ErrInvalidWeight):
			h.logger.Warn("PUT /preferences/{gameId} - Invalid weight: user_id=%s, game_id=%s, weight=%d",
				uc.UserID, gameID, req.Weight)
			handlers.RespondBadRequest(w, msgInvalidWeight)

		case errors.Is(err, preferencesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PUT /preferences/{gameId} - Failed to commit: user_id=%s, game_id=%s, error=%v",
				uc.UserID, gameID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /preferences/{gameId} - Preference committed: user_id=%s, game_id=%s, weight=%d",
		uc.UserID, gameID, committed.Weight)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(committed))
}
