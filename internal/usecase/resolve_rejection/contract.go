package resolve_rejection

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// SessionStore интерфейс стора сессий
type SessionStore interface {
	Get(ctx context.Context, userID, sessionID string) (*domain.Session, error)
}

// AvailabilityStore интерфейс стора доступности
type AvailabilityStore interface {
	List(ctx context.Context, userID string) ([]*domain.AvailabilitySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
