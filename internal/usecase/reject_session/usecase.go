package reject_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	matchmakingClient "github.com/squadsync/SquadSync-SessionService/internal/integrations/matchmaking"
	sessionStore "github.com/squadsync/SquadSync-SessionService/internal/store/sessions"
)

// UseCase use case отказа от участия в сессии
type UseCase struct {
	sessions     SessionStore
	availability AvailabilityStore
	client       MatchmakingClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionStore,
	availability AvailabilityStore,
	client MatchmakingClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		availability: availability,
		client:       client,
		logger:       logger,
	}
}

// Execute отклоняет участие пользователя в сессии по указанной причине
//
// Переходы PENDING -> REJECTED и ACCEPTED -> REJECTED (withdraw).
// Причина сверяется с таблицей резолвера по текущим слотам: NOT_AVAILABLE
// без пересекающегося слота дает ошибку валидации до сетевого вызова.
// Удаление пересекающегося слота при NOT_AVAILABLE выполняет внешний
// сервис; здесь после успеха лишь перечитываются оба стора
func (uc *UseCase) Execute(ctx context.Context, userID, sessionID string, rawReason string) error {
	uc.logger.Info("RejectSession: user=%s, session=%s, reason=%s", userID, sessionID, rawReason)

	reason, err := domain.ParseRejectionReason(rawReason)
	if err != nil {
		uc.logger.Warn("RejectSession: invalid reason %q for user=%s", rawReason, userID)
		return fmt.Errorf("%w: %v", ErrInvalidReason, err)
	}

	session, err := uc.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("RejectSession: session id=%s not found for user=%s", sessionID, userID)
			return ErrSessionNotFound
		}
		uc.logger.Error("RejectSession: store error for session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	if err := validateTransition(session, userID); err != nil {
		uc.logger.Warn("RejectSession: transition rejected for user=%s, session=%s: %v", userID, sessionID, err)
		return err
	}

	slots, err := uc.availability.List(ctx, userID)
	if err != nil {
		uc.logger.Error("RejectSession: failed to list slots for user=%s: %v", userID, err)
		return fmt.Errorf("%w: failed to list availability: %v", ErrService, err)
	}

	if err := validateReason(session, slots, reason); err != nil {
		uc.logger.Warn("RejectSession: reason %s not allowed for user=%s, session=%s", reason, userID, sessionID)
		return err
	}

	if err := uc.client.Reject(ctx, userID, sessionID, reason); err != nil {
		switch {
		case errors.Is(err, matchmakingClient.ErrSessionNotFound):
			uc.logger.Warn("RejectSession: session id=%s not found upstream", sessionID)
			return ErrSessionNotFound
		case errors.Is(err, matchmakingClient.ErrForbidden):
			uc.logger.Warn("RejectSession: user=%s is not a participant of session=%s upstream", userID, sessionID)
			return ErrNotParticipant
		default:
			uc.logger.Error("RejectSession: reject failed for user=%s, session=%s: %v", userID, sessionID, err)
			return fmt.Errorf("%w: %v", ErrService, err)
		}
	}

	// Перечитываем оба стора: при NOT_AVAILABLE внешний сервис удалил
	// пересекающийся слот, и UI должен это увидеть
	if err := uc.sessions.Refresh(ctx, userID); err != nil {
		uc.logger.Error("RejectSession: sessions refresh failed for user=%s: %v", userID, err)
		return fmt.Errorf("%w: sessions refresh failed: %v", ErrService, err)
	}
	if err := uc.availability.Refresh(ctx, userID); err != nil {
		uc.logger.Error("RejectSession: availability refresh failed for user=%s: %v", userID, err)
		return fmt.Errorf("%w: availability refresh failed: %v", ErrService, err)
	}

	uc.logger.Info("RejectSession: user=%s rejected session=%s with reason=%s", userID, sessionID, reason)
	return nil
}
