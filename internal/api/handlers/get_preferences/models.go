package get_preferences

import (
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/service/preferences/models"
)

// PreferenceView HTTP представление предпочтения
type PreferenceView struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	GameID    string `json:"gameId"`
	Weight    int    `json:"weight"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.PreferenceListResponse) []PreferenceView {
	out := make([]PreferenceView, len(resp.Preferences))
	for i, pref := range resp.Preferences {
		out[i] = PreferenceView{
			ID:        pref.ID,
			UserID:    pref.UserID,
			GameID:    pref.GameID,
			Weight:    pref.Weight,
			UpdatedAt: pref.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}
