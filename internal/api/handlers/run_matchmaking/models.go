package run_matchmaking

import "github.com/squadsync/SquadSync-SessionService/internal/api/handlers"

// RunMatchmakingResponse HTTP response model
type RunMatchmakingResponse struct {
	Created  int                    `json:"created"`
	Sessions []handlers.SessionView `json:"sessions"`
}
