package accept_session

import "context"

// AcceptSessionUseCase интерфейс use case подтверждения участия
type AcceptSessionUseCase interface {
	Execute(ctx context.Context, userID, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
