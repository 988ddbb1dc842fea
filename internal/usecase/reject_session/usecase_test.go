package reject_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

const (
	testUserID    = "user-1"
	testSessionID = "session-1"
)

var sessionStart = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type fakeSessionStore struct {
	session      *domain.Session
	getErr       error
	refreshCalls int
}

func (f *fakeSessionStore) Get(_ context.Context, _, _ string) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

func (f *fakeSessionStore) Refresh(_ context.Context, _ string) error {
	f.refreshCalls++
	return nil
}

type fakeAvailabilityStore struct {
	slots        []*domain.AvailabilitySlot
	listErr      error
	refreshCalls int
}

func (f *fakeAvailabilityStore) List(_ context.Context, _ string) ([]*domain.AvailabilitySlot, error) {
	return f.slots, f.listErr
}

func (f *fakeAvailabilityStore) Refresh(_ context.Context, _ string) error {
	f.refreshCalls++
	return nil
}

type fakeMatchmakingClient struct {
	rejectErr    error
	rejectCalls  int
	rejectReason domain.RejectionReason
}

func (f *fakeMatchmakingClient) Reject(_ context.Context, _, _ string, reason domain.RejectionReason) error {
	f.rejectCalls++
	f.rejectReason = reason
	return f.rejectErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func makeSession(responseStatus domain.ResponseStatus) *domain.Session {
	return &domain.Session{
		ID:        testSessionID,
		StartTime: sessionStart,
		EndTime:   sessionStart.Add(2 * time.Hour),
		Status:    domain.SessionPreliminary,
		Participants: []domain.SessionParticipant{
			{UserID: testUserID, Username: "alice", Status: responseStatus},
		},
	}
}

// Слот, пересекающийся с тестовой сессией
func overlappingSlot() *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:        "slot-1",
		UserID:    testUserID,
		StartTime: sessionStart.Add(-time.Hour),
		EndTime:   sessionStart.Add(time.Hour),
	}
}

// Слот, не пересекающийся с тестовой сессией
func disjointSlot() *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:        "slot-2",
		UserID:    testUserID,
		StartTime: sessionStart.Add(3 * time.Hour),
		EndTime:   sessionStart.Add(4 * time.Hour),
	}
}

func newTestUseCase(sessions *fakeSessionStore, availability *fakeAvailabilityStore, client *fakeMatchmakingClient) *UseCase {
	return NewUseCase(sessions, availability, client, nopLogger{})
}

func TestExecute_RejectNotAvailableWithOverlap(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponsePending)}
	availability := &fakeAvailabilityStore{slots: []*domain.AvailabilitySlot{overlappingSlot()}}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "NOT_AVAILABLE")

	require.NoError(t, err)
	assert.Equal(t, 1, client.rejectCalls)
	assert.Equal(t, domain.ReasonNotAvailable, client.rejectReason)

	// После успеха перечитываются оба стора
	assert.Equal(t, 1, sessions.refreshCalls)
	assert.Equal(t, 1, availability.refreshCalls)
}

func TestExecute_RejectDontWantGameWithoutOverlap(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponsePending)}
	availability := &fakeAvailabilityStore{slots: []*domain.AvailabilitySlot{disjointSlot()}}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "DONT_WANT_GAME")

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonDontWantGame, client.rejectReason)
}

func TestExecute_NotAvailableWithoutOverlapFailsBeforeNetwork(t *testing.T) {
	// Сессия [10:00, 12:00), единственный слот [13:00, 14:00): удалять
	// нечего, причина NOT_AVAILABLE отклоняется без сетевого вызова
	sessions := &fakeSessionStore{session: makeSession(domain.ResponsePending)}
	availability := &fakeAvailabilityStore{slots: []*domain.AvailabilitySlot{disjointSlot()}}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "NOT_AVAILABLE")

	assert.ErrorIs(t, err, ErrReasonNotAllowed)
	assert.Equal(t, 0, client.rejectCalls)
	assert.Equal(t, 0, sessions.refreshCalls)
	assert.Equal(t, 0, availability.refreshCalls)
}

func TestExecute_WithdrawFromAccepted(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponseAccepted)}
	availability := &fakeAvailabilityStore{slots: []*domain.AvailabilitySlot{overlappingSlot()}}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "NOT_AVAILABLE")

	require.NoError(t, err)
	assert.Equal(t, 1, client.rejectCalls)
}

func TestExecute_AlreadyRejected(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponseRejected)}
	availability := &fakeAvailabilityStore{}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "DONT_WANT_GAME")

	assert.ErrorIs(t, err, ErrAlreadyRejected)
	assert.Equal(t, 0, client.rejectCalls)
}

func TestExecute_InvalidReason(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponsePending)}
	availability := &fakeAvailabilityStore{}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "BUSY")

	assert.ErrorIs(t, err, ErrInvalidReason)
	assert.Equal(t, 0, client.rejectCalls)
}

func TestExecute_ClientErrorLeavesStoresUntouched(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponsePending)}
	availability := &fakeAvailabilityStore{slots: []*domain.AvailabilitySlot{overlappingSlot()}}
	client := &fakeMatchmakingClient{rejectErr: assert.AnError}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), testUserID, testSessionID, "NOT_AVAILABLE")

	assert.ErrorIs(t, err, ErrService)
	assert.Equal(t, 0, sessions.refreshCalls)
	assert.Equal(t, 0, availability.refreshCalls)
}

func TestExecute_NotParticipant(t *testing.T) {
	sessions := &fakeSessionStore{session: makeSession(domain.ResponsePending)}
	availability := &fakeAvailabilityStore{}
	client := &fakeMatchmakingClient{}
	uc := newTestUseCase(sessions, availability, client)

	err := uc.Execute(context.Background(), "stranger", testSessionID, "DONT_WANT_GAME")

	assert.ErrorIs(t, err, ErrNotParticipant)
}
