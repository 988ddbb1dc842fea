package preferences

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// PreferenceRepository интерфейс репозитория предпочтений
type PreferenceRepository interface {
	Upsert(ctx context.Context, pref *domain.Preference) (*domain.Preference, error)
	GetByUserAndGame(ctx context.Context, userID, gameID string) (*domain.Preference, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Preference, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
