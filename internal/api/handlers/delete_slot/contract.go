package delete_slot

import "context"

// AvailabilityStore интерфейс стора доступности
type AvailabilityStore interface {
	Delete(ctx context.Context, userID, slotID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
