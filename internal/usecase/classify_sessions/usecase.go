package classify_sessions

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrService возвращается при ошибке загрузки набора сессий
	ErrService = errors.New("classify_sessions: session store error")
)

// UseCase use case разбиения сессий на группы отображения
// Пересчитывается от текущего набора стора при каждом запросе
type UseCase struct {
	sessions SessionStore
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute возвращает группы отображения для пользователя
func (uc *UseCase) Execute(ctx context.Context, userID string) (*Buckets, error) {
	list, err := uc.sessions.List(ctx, userID)
	if err != nil {
		uc.logger.Error("ClassifySessions: failed to list sessions for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	buckets := Partition(list, userID)

	uc.logger.Info("ClassifySessions: user=%s, confirmed=%d, awaiting=%d, accepted=%d, notInvited=%d",
		userID, len(buckets.Confirmed), len(buckets.AwaitingMyResponse),
		len(buckets.AcceptedByMe), len(buckets.NotInvited))
	return buckets, nil
}
