package get_slots

import (
	"context"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// AvailabilityStore интерфейс стора доступности
type AvailabilityStore interface {
	List(ctx context.Context, userID string) ([]*domain.AvailabilitySlot, error)
	Refresh(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
