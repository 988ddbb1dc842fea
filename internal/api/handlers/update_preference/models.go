package update_preference

import (
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/service/preferences/models"
)

// UpdatePreferenceRequest HTTP request model: предлагаемый вес
type UpdatePreferenceRequest struct {
	Weight int `json:"weight"`
}

// PreferenceView HTTP представление зафиксированного предпочтения
type PreferenceView struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	GameID    string `json:"gameId"`
	Weight    int    `json:"weight"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(pref *models.PreferenceResponse) *PreferenceView {
	return &PreferenceView{
		ID:        pref.ID,
		UserID:    pref.UserID,
		GameID:    pref.GameID,
		Weight:    pref.Weight,
		UpdatedAt: pref.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
