package models

import (
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// PreferenceResponse зафиксированное предпочтение в ответе сервиса
type PreferenceResponse struct {
	ID        int64
	UserID    string
	GameID    string
	Weight    int
	UpdatedAt time.Time
}

// PreferenceListResponse список предпочтений пользователя
type PreferenceListResponse struct {
	Preferences []*PreferenceResponse
}

// FromDomainPreference конвертирует доменную модель в ответ сервиса
func FromDomainPreference(pref *domain.Preference) *PreferenceResponse {
	return &PreferenceResponse{
		ID:        pref.ID,
		UserID:    pref.UserID,
		GameID:    pref.GameID,
		Weight:    pref.Weight,
		UpdatedAt: pref.UpdatedAt,
	}
}

// FromDomainPreferenceList конвертирует список доменных моделей
func FromDomainPreferenceList(prefs []*domain.Preference) *PreferenceListResponse {
	out := make([]*PreferenceResponse, len(prefs))
	for i, pref := range prefs {
		out[i] = FromDomainPreference(pref)
	}
	return &PreferenceListResponse{Preferences: out}
}
