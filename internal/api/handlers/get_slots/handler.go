package get_slots

import (
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgLoadFailed   = "не удалось загрузить доступность"
)

type Handler struct {
	store  AvailabilityStore
	logger Logger
}

func NewHandler(store AvailabilityStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		if err := h.store.Refresh(r.Context(), uc.UserID); err != nil {
			h.logger.Error("GET /availability - Refresh failed: user_id=%s, error=%v", uc.UserID, err)
			handlers.RespondBadGateway(w, msgLoadFailed)
			return
		}
	}

	slots, err := h.store.List(r.Context(), uc.UserID)
	if err != nil {
		h.logger.Error("GET /availability - Failed to list slots: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	h.logger.Info("GET /availability - Slots served: user_id=%s, count=%d", uc.UserID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSlotList(slots))
}
