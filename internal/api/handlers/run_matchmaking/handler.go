package run_matchmaking

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgRunFailed    = "не удалось запустить матчмейкинг"
)

type Handler struct {
	client MatchmakingClient
	store  SessionStore
	logger Logger
}

func NewHandler(client MatchmakingClient, store SessionStore, logger Logger) *Handler {
	return &Handler{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/matchmaking/run
// Тонкий прокси к внешнему сервису: алгоритм подбора не здесь
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	created, err := h.client.Run(r.Context())
	if err != nil {
		h.logger.Error("POST /matchmaking/run - Run failed: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadGateway(w, msgRunFailed)
		return
	}

	// Новые сессии должны сразу попасть в набор инициатора
	if err := h.store.Refresh(r.Context(), uc.UserID); err != nil {
		h.logger.Error("POST /matchmaking/run - Refresh failed: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadGateway(w, msgRunFailed)
		return
	}

	h.logger.Info("POST /matchmaking/run - Matchmaking completed: user_id=%s, created=%d", uc.UserID, len(created))
	handlers.RespondJSON(w, http.StatusOK, &RunMatchmakingResponse{
		Created:  len(created),
		Sessions: handlers.FromDomainSessionList(created),
	})
}
