package delete_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	availabilityStore "github.com/squadsync/SquadSync-SessionService/internal/store/availability"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgMissingSlotID = "не указан ID слота"
	msgNotFound      = "слот не найден"
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

// Handle DELETE /api/v1/availability/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	if err := h.store.Delete(r.Context(), uc.UserID, slotID); err != nil {
		if errors.Is(err, availabilityStore.ErrSlotNotFound) {
			h.logger.Warn("DELETE /availability/{id} - Slot not found: slot_id=%s, user_id=%s", slotID, uc.UserID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /availability/{id} - Failed: slot_id=%s, user_id=%s, error=%v", slotID, uc.UserID, err)
		handlers.RespondBadGateway(w, err.Error())
		return
	}

	h.logger.Info("DELETE /availability/{id} - Slot deleted: slot_id=%s, user_id=%s", slotID, uc.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
