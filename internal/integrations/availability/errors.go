package availability

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот доступности не найден
	ErrSlotNotFound = errors.New("availability client: slot not found")

	// ErrForbidden возвращается, когда слот принадлежит другому пользователю
	ErrForbidden = errors.New("availability client: slot belongs to another user")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availability client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availability client: invalid response")
)
