package preferences

import "errors"

var (
	// ErrPreferenceNotFound возвращается, когда предпочтение не найдено
	ErrPreferenceNotFound = errors.New("preferences.repository: preference not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("preferences.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("preferences.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("preferences.repository: failed to scan row")
)
