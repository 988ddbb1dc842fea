package get_rejection_options

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// ResolveRejectionUseCase интерфейс use case разбора отказа
type ResolveRejectionUseCase interface {
	Execute(ctx context.Context, userID, sessionID string) (domain.RejectionResolution, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
