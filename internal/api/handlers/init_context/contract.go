package init_context

import "context"

// ContextManager интерфейс менеджера пользовательских сессий
type ContextManager interface {
	Initialize(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
