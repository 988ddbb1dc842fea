package get_dashboard

import (
	"context"

	classifySessions "github.com/squadsync/SquadSync-SessionService/internal/usecase/classify_sessions"
)

// ClassifySessionsUseCase интерфейс use case разбиения сессий на группы
type ClassifySessionsUseCase interface {
	Execute(ctx context.Context, userID string) (*classifySessions.Buckets, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
