package availability

import (
	"fmt"
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// SlotDTO модель слота доступности из Availability Service
type SlotDTO struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	GameID    *string `json:"gameId,omitempty"`
}

// CreateSlotRequest тело запроса на создание слота
type CreateSlotRequest struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	GameID    *string `json:"gameId,omitempty"`
}

// ErrorResponse модель ошибки от Availability Service
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain валидирует форму DTO и конвертирует её в доменную модель
func (d *SlotDTO) ToDomain() (*domain.AvailabilitySlot, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("slot id is empty")
	}

	start, err := time.Parse(time.RFC3339, d.StartTime)
	if err != nil {
		return nil, fmt.Errorf("slot %s: invalid startTime: %v", d.ID, err)
	}
	end, err := time.Parse(time.RFC3339, d.EndTime)
	if err != nil {
		return nil, fmt.Errorf("slot %s: invalid endTime: %v", d.ID, err)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("slot %s: startTime is not before endTime", d.ID)
	}

	return &domain.AvailabilitySlot{
		ID:         d.ID,
		UserID:     d.UserID,
		StartTime:  start,
		EndTime:    end,
		ActivityID: d.GameID,
	}, nil
}
