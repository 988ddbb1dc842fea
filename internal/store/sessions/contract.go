package sessions

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// MatchmakingClient интерфейс клиента Matchmaking Service
type MatchmakingClient interface {
	GetSessions(ctx context.Context, userID string) ([]*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
