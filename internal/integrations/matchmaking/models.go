package matchmaking

import (
	"fmt"
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// SessionDTO модель сессии из Matchmaking Service
type SessionDTO struct {
	ID           string      `json:"id"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	SessionScore float64     `json:"sessionScore"`
	Game         GameDTO     `json:"game"`
	Players      []PlayerDTO `json:"players"`
	Status       string      `json:"status"`
}

// GameDTO денормализованная ссылка на игру
type GameDTO struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Genre         *string `json:"genre,omitempty"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
}

// PlayerDTO участник сессии с его статусом ответа
type PlayerDTO struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatarColor"`
	Status      string `json:"status"`
}

// RejectRequest тело запроса на отказ от сессии
type RejectRequest struct {
	Reason string `json:"reason"`
}

// ErrorResponse модель ошибки от Matchmaking Service
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain валидирует форму DTO и конвертирует её в доменную модель
// Несоответствие формы (пустые обязательные поля, неупорядоченный
// диапазон, неизвестные статусы) считается ошибкой границы, не undefined-поля
func (d *SessionDTO) ToDomain() (*domain.Session, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("session id is empty")
	}

	start, err := time.Parse(time.RFC3339, d.StartTime)
	if err != nil {
		return nil, fmt.Errorf("session %s: invalid startTime: %v", d.ID, err)
	}
	end, err := time.Parse(time.RFC3339, d.EndTime)
	if err != nil {
		return nil, fmt.Errorf("session %s: invalid endTime: %v", d.ID, err)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("session %s: startTime is not before endTime", d.ID)
	}

	if d.Game.ID == "" || d.Game.Title == "" {
		return nil, fmt.Errorf("session %s: game reference is incomplete", d.ID)
	}

	status, err := parseSessionStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("session %s: %v", d.ID, err)
	}

	participants := make([]domain.SessionParticipant, 0, len(d.Players))
	seen := make(map[string]struct{}, len(d.Players))
	for _, p := range d.Players {
		if p.UserID == "" {
			return nil, fmt.Errorf("session %s: participant with empty userId", d.ID)
		}
		if _, dup := seen[p.UserID]; dup {
			return nil, fmt.Errorf("session %s: duplicate participant %s", d.ID, p.UserID)
		}
		seen[p.UserID] = struct{}{}

		responseStatus, err := parseResponseStatus(p.Status)
		if err != nil {
			return nil, fmt.Errorf("session %s: participant %s: %v", d.ID, p.UserID, err)
		}

		participants = append(participants, domain.SessionParticipant{
			UserID:      p.UserID,
			Username:    p.Username,
			AvatarColor: p.AvatarColor,
			Status:      responseStatus,
		})
	}

	return &domain.Session{
		ID:        d.ID,
		StartTime: start,
		EndTime:   end,
		Activity: domain.Activity{
			ID:            d.Game.ID,
			Title:         d.Game.Title,
			Genre:         d.Game.Genre,
			CoverImageURL: d.Game.CoverImageURL,
		},
		Score:        d.SessionScore,
		Participants: participants,
		Status:       status,
	}, nil
}

func parseSessionStatus(s string) (domain.SessionStatus, error) {
	switch domain.SessionStatus(s) {
	case domain.SessionPreliminary, domain.SessionConfirmed, domain.SessionCancelled:
		return domain.SessionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown session status %q", s)
	}
}

func parseResponseStatus(s string) (domain.ResponseStatus, error) {
	switch domain.ResponseStatus(s) {
	case domain.ResponsePending, domain.ResponseAccepted, domain.ResponseRejected:
		return domain.ResponseStatus(s), nil
	default:
		return "", fmt.Errorf("unknown response status %q", s)
	}
}
