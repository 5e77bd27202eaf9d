package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Переходы между экранами
	ErrInvalidTransition = fmt.Errorf("недопустимый переход между экранами")
	ErrUnknownView       = fmt.Errorf("неизвестный экран")

	// Фильтры
	ErrUnknownFilterDimension = fmt.Errorf("неизвестное измерение фильтра")
	ErrUnknownFilterValue     = fmt.Errorf("недопустимое значение фильтра")

	// Заметки
	ErrEmptyNote      = fmt.Errorf("текст заметки пуст")
	ErrNoteIDConflict = fmt.Errorf("идентификатор заметки уже занят")
	ErrUnknownMetric  = fmt.Errorf("неизвестная метрика")

	// Сессии
	ErrSessionNotFound = fmt.Errorf("сессия не найдена")

	// Экспорт
	ErrUnknownExportFormat  = fmt.Errorf("неизвестный формат экспорта")
	ErrExportNotImplemented = fmt.Errorf("экспорт пока не реализован")

	// Общие
	ErrUnknownEvent = fmt.Errorf("неизвестное событие")
	ErrNotFound     = fmt.Errorf("запись не найдена")
	ErrBadRequest   = fmt.Errorf("неверный запрос")
)

// HttpError - ошибка, которую контроллер может отдать клиенту как есть.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

// statusBySentinel сопоставляет доменные ошибки с HTTP-статусами.
var statusBySentinel = []struct {
	err  error
	code int
}{
	{ErrInvalidTransition, http.StatusConflict},
	{ErrNoteIDConflict, http.StatusConflict},
	{ErrUnknownView, http.StatusBadRequest},
	{ErrUnknownFilterDimension, http.StatusBadRequest},
	{ErrUnknownFilterValue, http.StatusBadRequest},
	{ErrEmptyNote, http.StatusUnprocessableEntity},
	{ErrUnknownMetric, http.StatusBadRequest},
	{ErrUnknownEvent, http.StatusBadRequest},
	{ErrUnknownExportFormat, http.StatusBadRequest},
	{ErrExportNotImplemented, http.StatusNotImplemented},
	{ErrSessionNotFound, http.StatusNotFound},
	{ErrNotFound, http.StatusNotFound},
	{ErrBadRequest, http.StatusBadRequest},
}

// ToHttpError оборачивает доменную ошибку в HttpError с подходящим кодом.
// Неизвестные ошибки превращаются в 500.
func ToHttpError(err error) *HttpError {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return &HttpError{Code: s.code, Message: s.err.Error(), Err: err}
		}
	}
	return &HttpError{Code: http.StatusInternalServerError, Message: "Внутренняя ошибка сервера", Err: err}
}
