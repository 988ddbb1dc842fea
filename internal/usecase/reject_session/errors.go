package reject_session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("reject_session: session not found")

	// ErrNotParticipant возвращается, когда пользователь не приглашён в сессию
	ErrNotParticipant = errors.New("reject_session: user is not a participant")

	// ErrAlreadyRejected возвращается при повторном отказе
	ErrAlreadyRejected = errors.New("reject_session: session already rejected")

	// ErrSessionCancelled возвращается при попытке ответить на отменённую сессию
	ErrSessionCancelled = errors.New("reject_session: session is cancelled")

	// ErrInvalidReason возвращается при неизвестной причине отказа
	ErrInvalidReason = errors.New("reject_session: invalid rejection reason")

	// ErrReasonNotAllowed возвращается, когда причина не имеет смысла для сессии:
	// NOT_AVAILABLE без пересекающегося слота доступности отклоняется
	// до любого сетевого вызова
	ErrReasonNotAllowed = errors.New("reject_session: reason is not allowed for this session")

	// ErrService возвращается при ошибке обращения к внешнему сервису
	ErrService = errors.New("reject_session: matchmaking service error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_session: internal error")
)
