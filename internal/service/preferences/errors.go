package preferences

import "errors"

var (
	// ErrInvalidWeight возвращается, когда вес вне допустимого диапазона
	ErrInvalidWeight = errors.New("preferences: weight is out of bounds")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preferences: invalid input data")

	// ErrPreferenceNotFound возвращается, когда предпочтение не найдено
	ErrPreferenceNotFound = errors.New("preferences: preference not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("preferences: internal error")
)
