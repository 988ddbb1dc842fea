package domain

import "time"

// SessionStatus represents the status of a proposed game session
type SessionStatus string

const (
	SessionPreliminary SessionStatus = "PRELIMINARY"
	SessionConfirmed   SessionStatus = "CONFIRMED"
	SessionCancelled   SessionStatus = "CANCELLED"
)

// ResponseStatus represents a participant's response to a session proposal
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "PENDING"
	ResponseAccepted ResponseStatus = "ACCEPTED"
	ResponseRejected ResponseStatus = "REJECTED"
)

// Activity denormalized reference to the game the session was matched for
type Activity struct {
	ID            string
	Title         string
	Genre         *string
	CoverImageURL *string
}

// SessionParticipant участник сессии с его ответом на приглашение
// Статус ответа меняется только действием самого участника
type SessionParticipant struct {
	UserID      string
	Username    string
	AvatarColor string
	Status      ResponseStatus
}

// Session предложенная (или подтверждённая) игровая сессия
// Создаётся и оценивается только внешним Matchmaking Service;
// сервис читает её и меняет лишь статус ответа текущего пользователя
type Session struct {
	ID           string
	StartTime    time.Time
	EndTime      time.Time
	Activity     Activity
	Score        float64
	Participants []SessionParticipant
	Status       SessionStatus
}

// ParticipantFor returns the participant entry for the given user, if any
func (s *Session) ParticipantFor(userID string) (*SessionParticipant, bool) {
	for i := range s.Participants {
		if s.Participants[i].UserID == userID {
			return &s.Participants[i], true
		}
	}
	return nil, false
}

// IsConfirmed returns true if the external service has confirmed quorum
func (s *Session) IsConfirmed() bool {
	return s.Status == SessionConfirmed
}

// IsCancelled returns true if the session has been cancelled upstream
func (s *Session) IsCancelled() bool {
	return s.Status == SessionCancelled
}

// IsPreliminary returns true if the session is still awaiting responses
func (s *Session) IsPreliminary() bool {
	return s.Status == SessionPreliminary
}
