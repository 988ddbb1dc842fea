package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	preferencesRepo "github.com/squadsync/SquadSync-SessionService/internal/infra/storage/preferences"
)

const (
	testUserID = "user-1"
	testGameID = "game-1"
)

type fakePreferenceRepository struct {
	byKey       map[string]*domain.Preference
	upsertErr   error
	listErr     error
	upsertCalls int
	nextID      int64
}

func newFakeRepo() *fakePreferenceRepository {
	return &fakePreferenceRepository{byKey: make(map[string]*domain.Preference)}
}

func (f *fakePreferenceRepository) Upsert(_ context.Context, pref *domain.Preference) (*domain.Preference, error) {
	f.upsertCalls++
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}

	key := pref.UserID + "/" + pref.GameID
	now := time.Now().UTC()
	existing, ok := f.byKey[key]
	if ok {
		existing.Weight = pref.Weight
		existing.UpdatedAt = now
		return existing, nil
	}

	f.nextID++
	created := &domain.Preference{
		ID:        f.nextID,
		UserID:    pref.UserID,
		GameID:    pref.GameID,
		Weight:    pref.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.byKey[key] = created
	return created, nil
}

func (f *fakePreferenceRepository) GetByUserAndGame(_ context.Context, userID, gameID string) (*domain.Preference, error) {
	pref, ok := f.byKey[userID+"/"+gameID]
	if !ok {
		return nil, preferencesRepo.ErrPreferenceNotFound
	}
	return pref, nil
}

func (f *fakePreferenceRepository) ListByUser(_ context.Context, userID string) ([]*domain.Preference, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Preference
	for _, pref := range f.byKey {
		if pref.UserID == userID {
			out = append(out, pref)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNewDraft(t *testing.T) {
	service := NewService(newFakeRepo(), nopLogger{})

	draft := service.NewDraft(testUserID, testGameID, 7)

	assert.NotEmpty(t, draft.DraftID)
	assert.Equal(t, testUserID, draft.UserID)
	assert.Equal(t, testGameID, draft.GameID)
	assert.Equal(t, 7, draft.Weight)

	// Каждый черновик получает собственный ID
	other := service.NewDraft(testUserID, testGameID, 7)
	assert.NotEqual(t, draft.DraftID, other.DraftID)
}

func TestCommit_CreatesPreference(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nopLogger{})

	draft := service.NewDraft(testUserID, testGameID, 7)
	committed, err := service.Commit(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, testUserID, committed.UserID)
	assert.Equal(t, testGameID, committed.GameID)
	assert.Equal(t, 7, committed.Weight)
	assert.NotZero(t, committed.ID)
}

func TestCommit_UpdatesExistingPreference(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nopLogger{})

	first, err := service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, 3))
	require.NoError(t, err)

	// Повторная фиксация того же (user, game) обновляет вес, не создавая записи
	second, err := service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, 9))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9, second.Weight)

	list, err := service.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, list.Preferences, 1)
}

func TestCommit_WeightOutOfBounds(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nopLogger{})

	for _, weight := range []int{-1, 11, 100} {
		_, err := service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, weight))
		assert.ErrorIs(t, err, ErrInvalidWeight)
	}

	// Граничные значения допустимы
	_, err := service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, domain.MinPreferenceWeight))
	assert.NoError(t, err)
	_, err = service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, domain.MaxPreferenceWeight))
	assert.NoError(t, err)
}

func TestCommit_MissingIdentifiers(t *testing.T) {
	service := NewService(newFakeRepo(), nopLogger{})

	_, err := service.Commit(context.Background(), service.NewDraft("", testGameID, 5))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Commit(context.Background(), service.NewDraft(testUserID, "", 5))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommit_RepositoryErrorLeavesNothingCommitted(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = assert.AnError
	service := NewService(repo, nopLogger{})

	_, err := service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, 5))

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.byKey)
}

func TestGet(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nopLogger{})

	_, err := service.Get(context.Background(), testUserID, testGameID)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	_, err = service.Commit(context.Background(), service.NewDraft(testUserID, testGameID, 4))
	require.NoError(t, err)

	pref, err := service.Get(context.Background(), testUserID, testGameID)
	require.NoError(t, err)
	assert.Equal(t, 4, pref.Weight)
}

func TestList_Empty(t *testing.T) {
	service := NewService(newFakeRepo(), nopLogger{})

	list, err := service.List(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Empty(t, list.Preferences)
}

func TestList_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = assert.AnError
	service := NewService(repo, nopLogger{})

	_, err := service.List(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrInternal)
}
