package matchmaking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

const testUserID = "user-1"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const sessionsPayload = `[
	{
		"id": "session-1",
		"startTime": "2025-06-15T18:00:00Z",
		"endTime": "2025-06-15T20:00:00Z",
		"sessionScore": 0.87,
		"game": {"id": "game-1", "title": "Catan", "genre": "strategy"},
		"players": [
			{"userId": "user-1", "username": "alice", "avatarColor": "#ff0000", "status": "PENDING"},
			{"userId": "user-2", "username": "bob", "avatarColor": "#00ff00", "status": "ACCEPTED"}
		],
		"status": "PRELIMINARY"
	}
]`

func TestGetSessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/matchmaking/sessions", r.URL.Path)
		assert.Equal(t, testUserID, r.Header.Get("X-User-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionsPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	sessions, err := client.GetSessions(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, sessions, 1)

	session := sessions[0]
	assert.Equal(t, "session-1", session.ID)
	assert.Equal(t, domain.SessionPreliminary, session.Status)
	assert.Equal(t, "Catan", session.Activity.Title)
	assert.Equal(t, 0.87, session.Score)
	assert.Equal(t, time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC), session.StartTime)

	require.Len(t, session.Participants, 2)
	participant, ok := session.ParticipantFor(testUserID)
	require.True(t, ok)
	assert.Equal(t, domain.ResponsePending, participant.Status)
}

func TestGetSessions_MalformedSessionRejected(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name: "inverted time range",
			payload: `[{"id": "s-1", "startTime": "2025-06-15T20:00:00Z", "endTime": "2025-06-15T18:00:00Z",
				"game": {"id": "g", "title": "t"}, "players": [], "status": "PRELIMINARY"}]`,
		},
		{
			name: "unknown session status",
			payload: `[{"id": "s-1", "startTime": "2025-06-15T18:00:00Z", "endTime": "2025-06-15T20:00:00Z",
				"game": {"id": "g", "title": "t"}, "players": [], "status": "DRAFT"}]`,
		},
		{
			name: "missing game reference",
			payload: `[{"id": "s-1", "startTime": "2025-06-15T18:00:00Z", "endTime": "2025-06-15T20:00:00Z",
				"game": {"id": "", "title": ""}, "players": [], "status": "PRELIMINARY"}]`,
		},
		{
			name: "empty session id",
			payload: `[{"id": "", "startTime": "2025-06-15T18:00:00Z", "endTime": "2025-06-15T20:00:00Z",
				"game": {"id": "g", "title": "t"}, "players": [], "status": "PRELIMINARY"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second, nopLogger{})

			_, err := client.GetSessions(context.Background(), testUserID)
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestAccept(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.Accept(context.Background(), testUserID, "session-1")

	require.NoError(t, err)
	assert.Equal(t, "/api/sessions/session-1/accept", gotPath)
}

func TestReject_SendsReason(t *testing.T) {
	var gotBody RejectRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sessions/session-1/reject", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.Reject(context.Background(), testUserID, "session-1", domain.ReasonNotAvailable)

	require.NoError(t, err)
	assert.Equal(t, "NOT_AVAILABLE", gotBody.Reason)
}

func TestPostResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{"not found", http.StatusNotFound, ErrSessionNotFound},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second, nopLogger{})

			err := client.Accept(context.Background(), testUserID, "session-1")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestUnexpectedStatus_PreservesServiceErrorText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "matchmaking window is closed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.Accept(context.Background(), testUserID, "session-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "matchmaking window is closed")
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/matchmaking/run", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionsPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	sessions, err := client.Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}
