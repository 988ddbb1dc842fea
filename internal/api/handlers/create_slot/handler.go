package create_slot

import (
	"errors"
	"net/http"

	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	availabilityStore "github.com/squadsync/SquadSync-SessionService/internal/store/availability"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidTimes  = "некорректные временные метки"
	msgInvalidRange  = "время начала должно быть раньше времени окончания"
	msgWholeDayRange = "выбор целого дня не поддерживается"
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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uc, ok := usercontext.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	start, end, err := req.ParseTimes()
	if err != nil {
		h.logger.Warn("POST /availability - Invalid times: user_id=%s, error=%v", uc.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	slot, err := h.store.Create(r.Context(), uc.UserID, start, end, req.GameID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityStore.ErrInvalidRange):
			h.logger.Warn("POST /availability - Invalid range: user_id=%s", uc.UserID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availabilityStore.ErrWholeDayRange):
			h.logger.Warn("POST /availability - Whole-day range rejected: user_id=%s", uc.UserID)
			handlers.RespondBadRequest(w, msgWholeDayRange)

		default:
			h.logger.Error("POST /availability - Failed to create slot: user_id=%s, error=%v", uc.UserID, err)
			handlers.RespondBadGateway(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /availability - Slot created: user_id=%s, slot_id=%s", uc.UserID, slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainSlot(slot))
}
