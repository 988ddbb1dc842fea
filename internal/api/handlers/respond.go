package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrEmptyBody возвращается при попытке декодировать пустое тело запроса
var ErrEmptyBody = errors.New("handlers: request body is empty")

// ErrorResponse единый формат ошибки HTTP API
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет JSON ответ с указанным статус-кодом
// nil body дает пустое тело ответа
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// RespondError пишет ошибку в едином формате
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized пишет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden пишет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 Conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 Internal Server Error с общим сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервиса")
}

// RespondBadGateway пишет 502 Bad Gateway
// Используется, когда внешний сервис ответил ошибкой; текст ошибки
// сервиса, если он был, передается как есть
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, message)
}

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
