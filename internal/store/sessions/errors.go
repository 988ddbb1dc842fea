package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена в сторе
	ErrSessionNotFound = errors.New("sessions.store: session not found")

	// ErrService возвращается при ошибке обращения к Matchmaking Service
	ErrService = errors.New("sessions.store: matchmaking service error")
)
