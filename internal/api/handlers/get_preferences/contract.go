package get_preferences

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/service/preferences/models"
)

// PreferenceService интерфейс сервиса предпочтений
type PreferenceService interface {
	List(ctx context.Context, userID string) (*models.PreferenceListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
