package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "sustainability-dashboard/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse переводит ошибку в JSON-ответ. Доменные ошибки получают свой код,
// ошибки валидации - 400, всё остальное логируется и отдаётся как 500.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HttpResponse{
			Status:  false,
			Message: "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.JSON(echoErr.Code, &HttpResponse{
			Status:  false,
			Message: fmt.Sprint(echoErr.Message),
		})
	}

	httpErr := apperrors.ToHttpError(err)
	if httpErr.Code >= http.StatusInternalServerError && httpErr.Code != http.StatusNotImplemented {
		logger.Error("HTTP Error",
			zap.Int("code", httpErr.Code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
			zap.Any("context", httpErr.Context),
		)
	} else {
		logger.Debug("Запрос отклонён",
			zap.Int("code", httpErr.Code),
			zap.Error(err),
		)
	}

	return c.JSON(httpErr.Code, &HttpResponse{
		Status:  false,
		Message: httpErr.Message,
		Body:    httpErr.Details,
	})
}
