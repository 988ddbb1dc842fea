package create_slot

import (
	"fmt"
	"time"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	GameID    *string `json:"gameId,omitempty"`
}

// ParseTimes парсит временные метки запроса (ISO-8601)
func (r *CreateSlotRequest) ParseTimes() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid startTime: %v", err)
	}
	end, err = time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid endTime: %v", err)
	}
	return start, end, nil
}
