package create_slot

import (
	"context"
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// AvailabilityStore интерфейс стора доступности
type AvailabilityStore interface {
	Create(ctx context.Context, userID string, start, end time.Time, gameID *string) (*domain.AvailabilitySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
