package accept_session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("accept_session: session not found")

	// ErrNotParticipant возвращается, когда пользователь не приглашён в сессию
	ErrNotParticipant = errors.New("accept_session: user is not a participant")

	// ErrAlreadyRejected возвращается при подтверждении после отказа
	// Из REJECTED переходов нет до следующего refresh
	ErrAlreadyRejected = errors.New("accept_session: session already rejected")

	// ErrSessionCancelled возвращается при попытке ответить на отменённую сессию
	ErrSessionCancelled = errors.New("accept_session: session is cancelled")

	// ErrService возвращается при ошибке обращения к внешнему сервису
	ErrService = errors.New("accept_session: matchmaking service error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_session: internal error")
)
