package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

const testUserID = "user-1"

type fakeMatchmakingClient struct {
	mu       sync.Mutex
	sessions []*domain.Session
	err      error
	calls    int
}

func (f *fakeMatchmakingClient) GetSessions(_ context.Context, _ string) ([]*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions, nil
}

func (f *fakeMatchmakingClient) set(sessions []*domain.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = sessions
}

func (f *fakeMatchmakingClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func makeSession(id string) *domain.Session {
	start := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	return &domain.Session{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Status:    domain.SessionPreliminary,
	}
}

func TestList_LazyLoadsOnFirstAccess(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1")}}
	store := NewStore(client, nopLogger{})

	list, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, client.callCount())

	// Повторный List читает из кэша
	_, err = store.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 1, client.callCount())
}

func TestGet(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1"), makeSession("s-2")}}
	store := NewStore(client, nopLogger{})

	session, err := store.Get(context.Background(), testUserID, "s-2")
	require.NoError(t, err)
	assert.Equal(t, "s-2", session.ID)

	_, err = store.Get(context.Background(), testUserID, "s-missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRefresh_ReplacesSetAtomically(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1")}}
	store := NewStore(client, nopLogger{})

	_, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)

	// Новый набор полностью заменяет старый, а не дополняет его
	client.set([]*domain.Session{makeSession("s-2"), makeSession("s-3")})
	require.NoError(t, store.Refresh(context.Background(), testUserID))

	list, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s-2", list[0].ID)

	_, err = store.Get(context.Background(), testUserID, "s-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRefresh_IdempotentWithoutUpstreamChange(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1"), makeSession("s-2")}}
	store := NewStore(client, nopLogger{})

	before, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)

	// Набор наверху не менялся: два refresh подряд дают тот же снимок
	require.NoError(t, store.Refresh(context.Background(), testUserID))
	require.NoError(t, store.Refresh(context.Background(), testUserID))

	after, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRefresh_ErrorKeepsOldSet(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1")}}
	store := NewStore(client, nopLogger{})

	_, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)

	client.mu.Lock()
	client.err = assert.AnError
	client.mu.Unlock()

	err = store.Refresh(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrService)

	// Старый набор остаётся читаемым
	list, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEvict(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1")}}
	store := NewStore(client, nopLogger{})

	_, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 1, client.callCount())

	store.Evict(testUserID)

	// После Evict следующий List загружает набор заново
	_, err = store.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	client := &fakeMatchmakingClient{sessions: []*domain.Session{makeSession("s-1")}}
	store := NewStore(client, nopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = store.List(context.Background(), testUserID)
				_ = store.Refresh(context.Background(), testUserID)
			}
		}()
	}
	wg.Wait()

	list, err := store.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
