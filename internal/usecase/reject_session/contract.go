package reject_session

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// SessionStore интерфейс стора сессий
type SessionStore interface {
	Get(ctx context.Context, userID, sessionID string) (*domain.Session, error)
	Refresh(ctx context.Context, userID string) error
}

// AvailabilityStore интерфейс стора доступности
type AvailabilityStore interface {
	List(ctx context.Context, userID string) ([]*domain.AvailabilitySlot, error)
	Refresh(ctx context.Context, userID string) error
}

// MatchmakingClient интерфейс клиента Matchmaking Service
type MatchmakingClient interface {
	Reject(ctx context.Context, userID, sessionID string, reason domain.RejectionReason) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
