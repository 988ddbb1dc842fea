package update_preference

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	"github.com/squadsync/SquadSync-SessionService/internal/service/preferences/models"
)

// PreferenceService интерфейс сервиса предпочтений
type PreferenceService interface {
	NewDraft(userID, gameID string, weight int) *domain.PreferenceDraft
	Commit(ctx context.Context, draft *domain.PreferenceDraft) (*models.PreferenceResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
