package run_matchmaking

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// MatchmakingClient интерфейс клиента Matchmaking Service
type MatchmakingClient interface {
	Run(ctx context.Context) ([]*domain.Session, error)
}

// SessionStore интерфейс стора сессий
type SessionStore interface {
	Refresh(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
