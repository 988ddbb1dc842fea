package usercontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	refreshErr   error
	refreshCalls int
	evictCalls   int
}

func (f *fakeStore) Refresh(_ context.Context, _ string) error {
	f.refreshCalls++
	return f.refreshErr
}

func (f *fakeStore) Evict(_ string) {
	f.evictCalls++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestInitialize_LoadsBothStores(t *testing.T) {
	sessions := &fakeStore{}
	availability := &fakeStore{}
	manager := NewManager(sessions, availability, nopLogger{})

	err := manager.Initialize(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, sessions.refreshCalls)
	assert.Equal(t, 1, availability.refreshCalls)
}

func TestInitialize_SessionsErrorStopsEarly(t *testing.T) {
	sessions := &fakeStore{refreshErr: assert.AnError}
	availability := &fakeStore{}
	manager := NewManager(sessions, availability, nopLogger{})

	err := manager.Initialize(context.Background(), "user-1")

	require.Error(t, err)
	assert.Equal(t, 0, availability.refreshCalls)
}

func TestClear_EvictsBothStores(t *testing.T) {
	sessions := &fakeStore{}
	availability := &fakeStore{}
	manager := NewManager(sessions, availability, nopLogger{})

	manager.Clear("user-1")

	assert.Equal(t, 1, sessions.evictCalls)
	assert.Equal(t, 1, availability.evictCalls)
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithContext(context.Background(), &UserContext{UserID: "user-1", Username: "alice"})

	uc, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", uc.UserID)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
