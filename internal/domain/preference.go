package domain

import "time"

// Preference константы валидации веса предпочтения
const (
	MinPreferenceWeight = 0
	MaxPreferenceWeight = 10
)

// Preference зафиксированное предпочтение пользователя по игре
// Используется внешним матчмейкингом при подборе сессий
type Preference struct {
	ID        int64
	UserID    string
	GameID    string
	Weight    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PreferenceDraft черновик редактирования предпочтения
// Живёт только до успешного сохранения; UI показывает черновик,
// но зафиксированным значение становится после Commit
type PreferenceDraft struct {
	DraftID string
	UserID  string
	GameID  string
	Weight  int
}

// WeightInBounds returns true if the weight is within the allowed range
func (d *PreferenceDraft) WeightInBounds() bool {
	return d.Weight >= MinPreferenceWeight && d.Weight <= MaxPreferenceWeight
}
