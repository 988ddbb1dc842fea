package accept_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	matchmakingClient "github.com/squadsync/SquadSync-SessionService/internal/integrations/matchmaking"
	sessionStore "github.com/squadsync/SquadSync-SessionService/internal/store/sessions"
)

// UseCase use case подтверждения участия в сессии
type UseCase struct {
	sessions SessionStore
	client   MatchmakingClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, client MatchmakingClient, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

// Execute подтверждает участие пользователя в сессии
//
// Переход PENDING -> ACCEPTED. Статус не меняется оптимистично:
// до успешного ответа внешнего сервиса и refresh стора участник
// остаётся в прежнем состоянии. Сессия со статусом CONFIRMED при
// всё ещё PENDING-записи участника подтверждается так же: внешний
// сервис допускает поздние подключения. Повторный accept уже
// принявшего участника идемпотентен и тоже уходит наверх
func (uc *UseCase) Execute(ctx context.Context, userID, sessionID string) error {
	uc.logger.Info("AcceptSession: user=%s, session=%s", userID, sessionID)

	session, err := uc.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("AcceptSession: session id=%s not found for user=%s", sessionID, userID)
			return ErrSessionNotFound
		}
		uc.logger.Error("AcceptSession: store error for session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	if err := validateTransition(session, userID); err != nil {
		uc.logger.Warn("AcceptSession: transition rejected for user=%s, session=%s: %v", userID, sessionID, err)
		return err
	}

	if err := uc.client.Accept(ctx, userID, sessionID); err != nil {
		switch {
		case errors.Is(err, matchmakingClient.ErrSessionNotFound):
			uc.logger.Warn("AcceptSession: session id=%s not found upstream", sessionID)
			return ErrSessionNotFound
		case errors.Is(err, matchmakingClient.ErrForbidden):
			uc.logger.Warn("AcceptSession: user=%s is not a participant of session=%s upstream", userID, sessionID)
			return ErrNotParticipant
		default:
			uc.logger.Error("AcceptSession: accept failed for user=%s, session=%s: %v", userID, sessionID, err)
			return fmt.Errorf("%w: %v", ErrService, err)
		}
	}

	// Обновляем стор, чтобы UI увидел новый статус участника
	if err := uc.sessions.Refresh(ctx, userID); err != nil {
		uc.logger.Error("AcceptSession: refresh failed for user=%s: %v", userID, err)
		return fmt.Errorf("%w: refresh failed: %v", ErrService, err)
	}

	uc.logger.Info("AcceptSession: user=%s accepted session=%s", userID, sessionID)
	return nil
}

// validateTransition проверяет допустимость перехода accept для пользователя
func validateTransition(session *domain.Session, userID string) error {
	if session.IsCancelled() {
		return ErrSessionCancelled
	}

	participant, ok := session.ParticipantFor(userID)
	if !ok {
		return ErrNotParticipant
	}

	switch participant.Status {
	case domain.ResponsePending, domain.ResponseAccepted:
		// Повторный accept пропускаем наверх: внешний сервис
		// трактует его как no-op
		return nil
	case domain.ResponseRejected:
		return ErrAlreadyRejected
	default:
		return fmt.Errorf("%w: unexpected response status %q", ErrInternal, participant.Status)
	}
}
