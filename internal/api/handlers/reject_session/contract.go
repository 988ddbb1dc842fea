package reject_session

import "context"

// RejectSessionUseCase интерфейс use case отказа от участия
type RejectSessionUseCase interface {
	Execute(ctx context.Context, userID, sessionID string, rawReason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
