package availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда startTime не раньше endTime
	ErrInvalidRange = errors.New("availability.store: start time must be before end time")

	// ErrWholeDayRange возвращается для диапазона ровно от полуночи до полуночи
	// Такой выбор считается случайным вводом в календаре и отклоняется
	// до обращения к внешнему сервису
	ErrWholeDayRange = errors.New("availability.store: whole-day range is not allowed")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("availability.store: slot not found")

	// ErrService возвращается при ошибке обращения к Availability Service
	ErrService = errors.New("availability.store: availability service error")
)
