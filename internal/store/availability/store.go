package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	availabilityClient "github.com/squadsync/SquadSync-SessionService/internal/integrations/availability"
	"github.com/squadsync/SquadSync-SessionService/pkg/ptr"
)

// Store хранит слоты доступности пользователя
// Семантика подмены набора идентична стору сессий: единственный
// писатель на refresh, читатели не видят частичных обновлений
type Store struct {
	client AvailabilityClient
	log    Logger

	mu     sync.RWMutex
	byUser map[string][]*domain.AvailabilitySlot
}

// NewStore создает новый стор доступности
func NewStore(client AvailabilityClient, log Logger) *Store {
	return &Store{
		client: client,
		log:    log,
		byUser: make(map[string][]*domain.AvailabilitySlot),
	}
}

// List возвращает текущие слоты пользователя, загружая их при первом обращении
func (s *Store) List(ctx context.Context, userID string) ([]*domain.AvailabilitySlot, error) {
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

// Create создает слот доступности
//
// Инвертированный диапазон и диапазон ровно от полуночи до полуночи
// отклоняются до любого сетевого вызова
func (s *Store) Create(ctx context.Context, userID string, start, end time.Time, gameID *string) (*domain.AvailabilitySlot, error) {
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}
	if domain.IsWholeDay(start, end) {
		return nil, ErrWholeDayRange
	}

	slot, err := s.client.CreateSlot(ctx, userID, start, end, gameID)
	if err != nil {
		s.log.Error("availability.store: create failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	if err := s.Refresh(ctx, userID); err != nil {
		return nil, err
	}

	s.log.Info("availability.store: created slot id=%s for user=%s [%s, %s) game=%q",
		slot.ID, userID, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339),
		ptr.Deref(gameID))
	return slot, nil
}

// Delete удаляет слот доступности
// Отсутствие слота отдается прямым вызывающим как ErrSlotNotFound
func (s *Store) Delete(ctx context.Context, userID, slotID string) error {
	if err := s.client.DeleteSlot(ctx, userID, slotID); err != nil {
		if errors.Is(err, availabilityClient.ErrSlotNotFound) {
			s.log.Warn("availability.store: slot id=%s not found for user=%s", slotID, userID)
			return ErrSlotNotFound
		}
		s.log.Error("availability.store: delete failed for slot id=%s, user=%s: %v", slotID, userID, err)
		return fmt.Errorf("%w: %v", ErrService, err)
	}

	if err := s.Refresh(ctx, userID); err != nil {
		return err
	}

	s.log.Info("availability.store: deleted slot id=%s for user=%s", slotID, userID)
	return nil
}

// Refresh перечитывает слоты пользователя и атомарно подменяет набор
func (s *Store) Refresh(ctx context.Context, userID string) error {
	fetched, err := s.client.GetSlots(ctx, userID, nil, nil)
	if err != nil {
		s.log.Error("availability.store: refresh failed for user=%s: %v", userID, err)
		return fmt.Errorf("%w: %v", ErrService, err)
	}

	s.mu.Lock()
	s.byUser[userID] = fetched
	s.mu.Unlock()

	s.log.Info("availability.store: refreshed %d slots for user=%s", len(fetched), userID)
	return nil
}

// Evict удаляет закэшированные слоты пользователя
func (s *Store) Evict(userID string) {
	s.mu.Lock()
	delete(s.byUser, userID)
	s.mu.Unlock()
}
