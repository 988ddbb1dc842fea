package usercontext

import (
	"context"
	"fmt"
)

// SessionStore интерфейс стора сессий для управления жизненным циклом
type SessionStore interface {
	Refresh(ctx context.Context, userID string) error
	Evict(userID string)
}

// AvailabilityStore интерфейс стора доступности для управления жизненным циклом
type AvailabilityStore interface {
	Refresh(ctx context.Context, userID string) error
	Evict(userID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Manager жизненный цикл пользовательской сессии
//
// Initialize загружает сторы сессий и доступности вместе: оба набора
// нужны с первого экрана (резолвер отказа смотрит на слоты).
// Clear выбрасывает кэши пользователя при завершении сессии
type Manager struct {
	sessions     SessionStore
	availability AvailabilityStore
	logger       Logger
}

// NewManager создает новый менеджер пользовательских сессий
func NewManager(sessions SessionStore, availability AvailabilityStore, logger Logger) *Manager {
	return &Manager{
		sessions:     sessions,
		availability: availability,
		logger:       logger,
	}
}

// Initialize загружает оба стора для пользователя
func (m *Manager) Initialize(ctx context.Context, userID string) error {
	m.logger.Info("usercontext: initializing stores for user=%s", userID)

	if err := m.sessions.Refresh(ctx, userID); err != nil {
		return fmt.Errorf("usercontext: failed to load sessions: %w", err)
	}
	if err := m.availability.Refresh(ctx, userID); err != nil {
		return fmt.Errorf("usercontext: failed to load availability: %w", err)
	}

	return nil
}

// Clear выбрасывает кэши пользователя
func (m *Manager) Clear(userID string) {
	m.sessions.Evict(userID)
	m.availability.Evict(userID)
	m.logger.Info("usercontext: cleared stores for user=%s", userID)
}
