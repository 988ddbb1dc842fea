package get_dashboard

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
	usecase ClassifySessionsUseCase
	logger  Logger
}

func NewHandler(usecase ClassifySessionsUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	buckets, err := h.usecase.Execute(r.Context(), uc.UserID)
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to classify sessions: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	h.logger.Info("GET /dashboard - Dashboard served: user_id=%s, total=%d", uc.UserID, buckets.Total())
	handlers.RespondJSON(w, http.StatusOK, FromBuckets(buckets))
}
