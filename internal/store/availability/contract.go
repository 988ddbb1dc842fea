package availability

import (
	"context"
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// AvailabilityClient интерфейс клиента Availability Service
type AvailabilityClient interface {
	GetSlots(ctx context.Context, userID string, from, to *time.Time) ([]*domain.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, userID string, start, end time.Time, gameID *string) (*domain.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, userID, slotID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
