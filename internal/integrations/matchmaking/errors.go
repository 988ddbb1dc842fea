package matchmaking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия или запись участника не найдена
	ErrSessionNotFound = errors.New("matchmaking client: session not found")

	// ErrForbidden возвращается, когда пользователь не является участником сессии
	ErrForbidden = errors.New("matchmaking client: user is not a participant")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("matchmaking client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	// (транспортная ошибка, неожиданный статус-код или несоответствие формы данных)
	ErrInvalidResponse = errors.New("matchmaking client: invalid response")
)
