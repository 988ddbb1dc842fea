package accept_session

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// SessionStore интерфейс стора сессий
type SessionStore interface {
	Get(ctx context.Context, userID, sessionID string) (*domain.Session, error)
	Refresh(ctx context.Context, userID string) error
}

// MatchmakingClient интерфейс клиента Matchmaking Service
type MatchmakingClient interface {
	Accept(ctx context.Context, userID, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
