package get_preference

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/service/preferences/models"
)

// PreferenceService интерфейс сервиса предпочтений
type PreferenceService interface {
	Get(ctx context.Context, userID, gameID string) (*models.PreferenceResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
