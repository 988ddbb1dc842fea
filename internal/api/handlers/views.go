package handlers

import (
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// SessionView HTTP представление сессии
type SessionView struct {
	ID           string            `json:"id"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	SessionScore float64           `json:"sessionScore"`
	Game         GameView          `json:"game"`
	Players      []ParticipantView `json:"players"`
	Status       string            `json:"status"`
}

// GameView HTTP представление игры
type GameView struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Genre         *string `json:"genre,omitempty"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
}

// ParticipantView HTTP представление участника сессии
type ParticipantView struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatarColor"`
	Status      string `json:"status"`
}

// SlotView HTTP представление слота доступности
type SlotView struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	GameID    *string `json:"gameId,omitempty"`
}

// FromDomainSession конвертирует доменную сессию в HTTP представление
func FromDomainSession(s *domain.Session) SessionView {
	players := make([]ParticipantView, len(s.Participants))
	for i, p := range s.Participants {
		players[i] = ParticipantView{
			UserID:      p.UserID,
			Username:    p.Username,
			AvatarColor: p.AvatarColor,
			Status:      string(p.Status),
		}
	}

	return SessionView{
		ID:           s.ID,
		StartTime:    s.StartTime.UTC().Format(time.RFC3339),
		EndTime:      s.EndTime.UTC().Format(time.RFC3339),
		SessionScore: s.Score,
		Game: GameView{
			ID:            s.Activity.ID,
			Title:         s.Activity.Title,
			Genre:         s.Activity.Genre,
			CoverImageURL: s.Activity.CoverImageURL,
		},
		Players: players,
		Status:  string(s.Status),
	}
}

// FromDomainSessionList конвертирует список доменных сессий
func FromDomainSessionList(sessions []*domain.Session) []SessionView {
	out := make([]SessionView, len(sessions))
	for i, s := range sessions {
		out[i] = FromDomainSession(s)
	}
	return out
}

// FromDomainSlot конвертирует доменный слот в HTTP представление
func FromDomainSlot(s *domain.AvailabilitySlot) SlotView {
	return SlotView{
		ID:        s.ID,
		UserID:    s.UserID,
		StartTime: s.StartTime.UTC().Format(time.RFC3339),
		EndTime:   s.EndTime.UTC().Format(time.RFC3339),
		GameID:    s.ActivityID,
	}
}

// FromDomainSlotList конвертирует список доменных слотов
func FromDomainSlotList(slots []*domain.AvailabilitySlot) []SlotView {
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = FromDomainSlot(s)
	}
	return out
}
