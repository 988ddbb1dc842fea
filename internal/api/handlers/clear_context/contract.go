package clear_context

// ContextManager интерфейс менеджера пользовательских сессий
type ContextManager interface {
	Clear(userID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
