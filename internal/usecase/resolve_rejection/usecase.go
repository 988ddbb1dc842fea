package resolve_rejection

import (
	"context"
	"errors"
	"fmt"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	sessionStore "github.com/squadsync/SquadSync-SessionService/internal/store/sessions"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("resolve_rejection: session not found")

	// ErrService возвращается при ошибке обращения к сторам
	ErrService = errors.New("resolve_rejection: store error")
)

// UseCase use case разбора отказа: нужен ли диалог выбора причины
// и какие причины допустимы для конкретной сессии
type UseCase struct {
	sessions     SessionStore
	availability AvailabilityStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, availability AvailabilityStore, logger Logger) *UseCase {
	return &UseCase{
		sessions:     sessions,
		availability: availability,
		logger:       logger,
	}
}

// Execute возвращает резолюцию отказа для сессии при текущих слотах пользователя
func (uc *UseCase) Execute(ctx context.Context, userID, sessionID string) (domain.RejectionResolution, error) {
	session, err := uc.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("ResolveRejection: session id=%s not found for user=%s", sessionID, userID)
			return domain.RejectionResolution{}, ErrSessionNotFound
		}
		uc.logger.Error("ResolveRejection: store error for session id=%s: %v", sessionID, err)
		return domain.RejectionResolution{}, fmt.Errorf("%w: %v", ErrService, err)
	}

	slots, err := uc.availability.List(ctx, userID)
	if err != nil {
		uc.logger.Error("ResolveRejection: failed to list slots for user=%s: %v", userID, err)
		return domain.RejectionResolution{}, fmt.Errorf("%w: %v", ErrService, err)
	}

	resolution := domain.ResolveRejection(session, slots)

	uc.logger.Info("ResolveRejection: user=%s, session=%s, requiresPrompt=%t, default=%s",
		userID, sessionID, resolution.RequiresPrompt, resolution.DefaultReason)
	return resolution, nil
}
