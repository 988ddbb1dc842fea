package sessions

import (
	"context"
	"fmt"
	"sync"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// Store хранит набор сессий, видимых пользователю
//
// Набор на пользователя заменяется целиком при Refresh: новый срез
// собирается вне блокировки и подменяется под ней, читатели никогда
// не видят частично обновлённый набор
type Store struct {
	client MatchmakingClient
	log    Logger

	mu     sync.RWMutex
	byUser map[string][]*domain.Session
}

// NewStore создает новый стор сессий
func NewStore(client MatchmakingClient, log Logger) *Store {
	return &Store{
		client: client,
		log:    log,
		byUser: make(map[string][]*domain.Session),
	}
}

// List возвращает текущий набор сессий пользователя
// При первом обращении набор загружается из Matchmaking Service
func (s *Store) List(ctx context.Context, userID string) ([]*domain.Session, error) {
	s.mu.RLock()
	cached, ok := s.byUser[userID]
	s.mu.RUnlock()

	if ok {
		return cached, nil
	}

	if err := s.Refresh(ctx, userID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byUser[userID], nil
}

// Get возвращает сессию по ID из текущего набора пользователя
func (s *Store) Get(ctx context.Context, userID, sessionID string) (*domain.Session, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, session := range list {
		if session.ID == sessionID {
			return session, nil
		}
	}

	return nil, ErrSessionNotFound
}

// Refresh перечитывает набор сессий пользователя и атомарно подменяет его
func (s *Store) Refresh(ctx context.Context, userID string) error {
	fetched, err := s.client.GetSessions(ctx, userID)
	if err != nil {
		s.log.Error("sessions.store: refresh failed for user=%s: %v", userID, err)
		return fmt.Errorf("%w: %v", ErrService, err)
	}

	s.mu.Lock()
	s.byUser[userID] = fetched
	s.mu.Unlock()

	s.log.Info("sessions.store: refreshed %d sessions for user=%s", len(fetched), userID)
	return nil
}

// Evict удаляет закэшированный набор пользователя
// Следующий List загрузит его заново
func (s *Store) Evict(userID string) {
	s.mu.Lock()
	delete(s.byUser, userID)
	s.mu.Unlock()
}
